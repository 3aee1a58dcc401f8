package audio

import (
	"bytes"
	"log"
	"sync"

	"blockworld/internal/config"

	"github.com/ebitengine/oto/v3"
)

// Only one oto context may exist per process.
var (
	otoContext     *oto.Context
	otoContextOnce sync.Once
	otoContextErr  error
)

func initOtoContext() error {
	otoContextOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatFloat32LE,
		}
		var ready chan struct{}
		otoContext, ready, otoContextErr = oto.NewContext(op)
		if otoContextErr != nil {
			return
		}
		<-ready
	})
	return otoContextErr
}

// Manager plays one-shot effects. A Manager without a device is silent;
// every method is safe to call on it.
type Manager struct {
	mu      sync.Mutex
	ctx     *oto.Context
	volume  float32
	buffers map[Effect][]byte
	active  []*oto.Player
}

// NewManager opens the output device when audio is enabled. Failing to open
// it is logged and yields a silent Manager.
func NewManager(cfg config.AudioConfig) *Manager {
	m := &Manager{
		volume:  float32(cfg.Volume),
		buffers: make(map[Effect][]byte),
	}
	if !cfg.Enabled {
		log.Println("audio: disabled in settings")
		return m
	}
	if err := initOtoContext(); err != nil {
		log.Printf("audio: failed to open output device, continuing without sound: %v", err)
		return m
	}
	m.ctx = otoContext
	for _, e := range []Effect{Break, Place, Select} {
		m.buffers[e] = encodeStereo(Synthesize(e, SampleRate), 1)
	}
	log.Println("audio: output initialized")
	return m
}

func (m *Manager) Enabled() bool {
	return m != nil && m.ctx != nil
}

// Play starts an effect. Overlapping plays mix.
func (m *Manager) Play(e Effect) {
	if !m.Enabled() {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	buf, ok := m.buffers[e]
	if !ok {
		return
	}
	m.prune()

	p := m.ctx.NewPlayer(bytes.NewReader(buf))
	p.SetVolume(float64(m.volume))
	p.Play()
	m.active = append(m.active, p)
}

// prune closes players that have finished. Caller holds mu.
func (m *Manager) prune() {
	kept := m.active[:0]
	for _, p := range m.active {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		if err := p.Close(); err != nil {
			log.Printf("audio: close player: %v", err)
		}
	}
	m.active = kept
}

// Close stops and releases every player.
func (m *Manager) Close() {
	if !m.Enabled() {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.active {
		p.Pause()
		p.Close()
	}
	m.active = nil
}
