// Package snapshot defines the read-only player controller state consumed at
// render time, and loads it from fixture files.
package snapshot

// Episode identifies the episode currently playing.
type Episode struct {
	Title  string `yaml:"title" json:"title"`
	Number int    `yaml:"number" json:"number" validate:"gte=0"`
}

// AnilistData carries series metadata from the catalog provider.
type AnilistData struct {
	Title string `yaml:"title" json:"title"`
}

// PlayerSettings holds user-configured seek and skip durations in seconds.
type PlayerSettings struct {
	SeekDuration int `yaml:"seekDuration" json:"seekDuration" validate:"gte=0"`
	SkipDuration int `yaml:"skipDuration" json:"skipDuration" validate:"gte=0"`
}

// Snapshot is the controller state for a single frame.
type Snapshot struct {
	IsLocked        bool           `yaml:"isLocked" json:"isLocked"`
	IsPlaying       bool           `yaml:"isPlaying" json:"isPlaying"`
	IsBuffering     bool           `yaml:"isBuffering" json:"isBuffering"`
	ShowControls    bool           `yaml:"showControls" json:"showControls"`
	IsOffline       bool           `yaml:"isOffline" json:"isOffline"`
	IsMobile        bool           `yaml:"isMobile" json:"isMobile"`
	IsDesktop       bool           `yaml:"isDesktop" json:"isDesktop"`
	CanGoForward    bool           `yaml:"canGoForward" json:"canGoForward"`
	CanGoBackward   bool           `yaml:"canGoBackward" json:"canGoBackward"`
	VideoHeight     *int           `yaml:"videoHeight,omitempty" json:"videoHeight,omitempty" validate:"omitempty,gte=0"`
	CurrentPosition string         `yaml:"currentPosition" json:"currentPosition" validate:"omitempty,timecode"`
	EpisodeDuration string         `yaml:"episodeDuration" json:"episodeDuration" validate:"omitempty,timecode"`
	CurrentEpisode  Episode        `yaml:"currentEpisode" json:"currentEpisode"`
	AnilistData     AnilistData    `yaml:"anilistData" json:"anilistData"`
	ItemName        *string        `yaml:"itemName,omitempty" json:"itemName,omitempty"`
	PlayerSettings  PlayerSettings `yaml:"playerSettings" json:"playerSettings"`
}

// Default returns the state of an unlocked, paused, online desktop player
// with controls showing.
func Default() Snapshot {
	return Snapshot{
		ShowControls:    true,
		IsDesktop:       true,
		CurrentPosition: "00:00",
		EpisodeDuration: "00:00",
		PlayerSettings:  PlayerSettings{SeekDuration: 10, SkipDuration: 85},
	}
}

// Locked reports whether the controls are locked.
func (s Snapshot) Locked() bool { return s.IsLocked }

// Playing reports whether playback is running.
func (s Snapshot) Playing() bool { return s.IsPlaying }

// Offline reports whether the player is playing downloaded media.
func (s Snapshot) Offline() bool { return s.IsOffline }

// ForwardAvailable reports whether a next episode exists.
func (s Snapshot) ForwardAvailable() bool { return s.CanGoForward }

// BackwardAvailable reports whether a previous episode exists.
func (s Snapshot) BackwardAvailable() bool { return s.CanGoBackward }

// WithLocked returns a copy with the lock flag set.
func (s Snapshot) WithLocked(locked bool) Snapshot {
	s.IsLocked = locked
	return s
}
