package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hajimehoshi/go-mp3"
	"github.com/hajimehoshi/oto/v2"
)

// SoundEffect is an enum for the game's sound cues.
type SoundEffect int

const (
	SoundDeal SoundEffect = iota
	SoundDraw
	SoundDiscard
	SoundWin
)

// soundFiles maps each effect to its file under the asset directory. Sounds
// are optional: a missing file just means that cue stays silent.
var soundFiles = map[SoundEffect]string{
	SoundDeal:    "deal.mp3",
	SoundDraw:    "draw.mp3",
	SoundDiscard: "discard.mp3",
	SoundWin:     "win.mp3",
}

const soundAssetDir = "assets/sounds"

var (
	otoCtx         *oto.Context
	soundData      = make(map[SoundEffect][]byte)
	lastPlayTimes  = make(map[SoundEffect]time.Time) // per-sound rate limiting
	soundLoaded    = false
	soundMutex     sync.Mutex // protects lastPlayTimes and activePlayers
	soundRateLimit = 50 * time.Millisecond
	activePlayers  = make(map[oto.Player]bool)
)

// initAudio initializes the audio context once at startup. Any failure logs
// and leaves audio disabled; the game never depends on sound.
func initAudio() {
	var readyChan chan struct{}
	var err error
	otoCtx, readyChan, err = oto.NewContext(44100, 2, 2)
	if err != nil {
		log.Printf("audio disabled: %v", err)
		return
	}

	// The context takes a moment to come up. Wait for it off the frame loop,
	// then load the sounds and start the player cleanup.
	go func() {
		<-readyChan
		soundLoaded = true
		loadAllSounds()
		go cleanupActivePlayers()
	}()
}

// cleanupActivePlayers periodically closes finished sound players so the
// activePlayers map does not grow for the life of the process.
func cleanupActivePlayers() {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		soundMutex.Lock()
		for player, active := range activePlayers {
			if active && !player.IsPlaying() {
				player.Close()
				delete(activePlayers, player)
			}
		}
		soundMutex.Unlock()
	}
}

func loadAllSounds() {
	for effect, name := range soundFiles {
		loadSound(effect, filepath.Join(soundAssetDir, name))
	}
}

// loadSound decodes one mp3 file into raw samples kept in memory. Absent
// files are skipped silently; they simply were not shipped.
func loadSound(effect SoundEffect, path string) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("could not read sound %s: %v", path, err)
		}
		return
	}

	decoder, err := mp3.NewDecoder(bytes.NewReader(fileBytes))
	if err != nil {
		log.Printf("could not decode mp3 %s: %v", path, err)
		return
	}
	decodedBytes, err := io.ReadAll(decoder)
	if err != nil {
		log.Printf("could not read decoded mp3 %s: %v", path, err)
		return
	}

	soundMutex.Lock()
	soundData[effect] = decodedBytes
	soundMutex.Unlock()
}

// PlaySound plays a pre-loaded sound effect. It is a no-op when audio is
// disabled or the effect was not loaded, and rate-limits each effect so a
// burst of game events does not stack identical sounds.
func PlaySound(effect SoundEffect) {
	if !soundLoaded {
		return
	}

	soundMutex.Lock()
	if time.Since(lastPlayTimes[effect]) < soundRateLimit {
		soundMutex.Unlock()
		return
	}
	lastPlayTimes[effect] = time.Now()
	data, ok := soundData[effect]
	if !ok || len(data) == 0 {
		soundMutex.Unlock()
		return
	}

	player := otoCtx.NewPlayer(bytes.NewReader(data))
	// Keep a reference while it plays; the cleanup loop closes it later.
	activePlayers[player] = true
	soundMutex.Unlock()

	player.Play()
}
