package playback

import (
	"sync"
)

const (
	// FeedThreshold is the visible-area ratio at which a feed item counts as
	// on screen.
	FeedThreshold = 0.5
	// PlayerThreshold is the stricter ratio the player itself requires
	// before starting playback.
	PlayerThreshold = 0.6
)

// Player starts and stops actual media playback for one feed item. Play may
// fail (a blocked autoplay); the controller treats that as "stays paused",
// not as an error to surface.
type Player interface {
	Play() error
	Pause()
}

type item struct {
	player  Player
	playing bool
	muted   bool
	manual  bool // manual toggle override, cleared on the next visibility transition
}

// Controller holds the single piece of process-wide state deciding which feed
// item is active. At most one item is active at any time, by construction:
// activation of one item deactivates the previous holder, rather than relying
// on layout geometry to keep items mutually exclusive.
type Controller struct {
	mu     sync.Mutex
	items  map[string]*item
	active string // id of the active item, "" if none
}

func NewController() *Controller {
	return &Controller{items: make(map[string]*item)}
}

// Register mounts a feed item. Items start inactive and muted.
func (c *Controller) Register(id string, p Player) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[id] = &item{player: p, muted: true}
}

// Unregister unmounts a feed item, pausing it if it was active.
func (c *Controller) Unregister(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[id]
	if !ok {
		return
	}
	if c.active == id {
		it.player.Pause()
		c.active = ""
	}
	delete(c.items, id)
}

// SetVisibility feeds one viewport observation for an item. Crossing both
// thresholds makes the item active (deactivating the previous holder and
// attempting best-effort playback); dropping below deactivates and pauses it
// unconditionally. Either transition clears a manual override. Re-reports on
// the same side of the thresholds, as produced by a resize, are no-ops.
func (c *Controller) SetVisibility(id string, ratio float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[id]
	if !ok {
		return
	}

	visible := ratio >= FeedThreshold && ratio >= PlayerThreshold

	if visible {
		if c.active == id {
			return
		}
		if prev, ok := c.items[c.active]; ok {
			prev.player.Pause()
			prev.playing = false
			prev.manual = false
		}
		c.active = id
		it.manual = false
		// blocked autoplay leaves the item paused, silently
		it.playing = it.player.Play() == nil
		return
	}

	if c.active != id {
		return
	}
	c.active = ""
	it.player.Pause()
	it.playing = false
	it.manual = false
}

// TogglePlay is the manual tap: it flips play/pause locally and overrides the
// automatic state until the next visibility transition.
func (c *Controller) TogglePlay(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[id]
	if !ok {
		return
	}
	it.manual = true
	if it.playing {
		it.player.Pause()
		it.playing = false
		return
	}
	it.playing = it.player.Play() == nil
}

// ToggleMute flips the per-item mute flag. Mute is independent of the active
// state and survives visibility transitions.
func (c *Controller) ToggleMute(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if it, ok := c.items[id]; ok {
		it.muted = !it.muted
	}
}

// ActiveID returns the id of the single active item, or "" when none is.
func (c *Controller) ActiveID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *Controller) IsPlaying(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[id]
	return ok && it.playing
}

func (c *Controller) IsMuted(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[id]
	return ok && it.muted
}
