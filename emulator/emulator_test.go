package emulator

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/tom/document"
	"github.com/ezrec/tom/machine"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Machine)
	assert.Equal("", emu.Text())
	assert.Equal(0, emu.Runs())

	snap := emu.Play()
	assert.Equal([]string{"Resetting all registers to their defaults..."}, snap.Log)
	assert.Equal(1, emu.Runs())
}

func TestEmulatorPlay(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.SetText(strings.Join([]string{
		"MOV 5, AX",
		"MOV 3, BX",
		"ADD BX, AX",
	}, "\n"))

	snap := emu.Play()
	assert.Equal(8, snap.Value(machine.REG_AX))
	assert.Equal(3, snap.Value(machine.REG_BX))
	assert.Equal(4, len(snap.Log))

	// Playing again starts from a reset machine.
	snap = emu.Play()
	assert.Equal(8, snap.Value(machine.REG_AX))
	assert.Equal(2, emu.Runs())

	emu.Reset()
	assert.Equal(0, emu.Snapshot().Value(machine.REG_AX))
}

func TestEmulatorPanel(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.SetText("MOV 3, GX\nCMP AX, BX")
	emu.Play()

	var names, values []string
	for name, value := range emu.Panel() {
		names = append(names, name)
		values = append(values, value)
	}

	assert.Equal([]string{"AX", "BX", "CX", "DX", "EX", "FX", "GX", "HX", "ZX"}, names)
	assert.Equal("00000011", values[6])
	assert.Equal("1", values[8])
}

func TestEmulatorLoadSave(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	emu := NewEmulator()
	require.NoError(emu.Load(fstest.MapFS{
		"loop.tom": &fstest.MapFile{Data: []byte("JMP 1\n")},
	}, "loop.tom"))
	assert.Equal("JMP 1\n", emu.Text())

	snap := emu.Play()
	assert.Equal(machine.COMMAND_LIMIT+2, len(snap.Log))

	err := emu.Load(fstest.MapFS{}, "missing.tom")
	assert.Error(err)
	assert.Equal("JMP 1\n", emu.Text())

	root := t.TempDir()
	require.NoError(emu.Save(document.DirFS(root), "saved"+document.EXTENSION))

	data, err := os.ReadFile(filepath.Join(root, "saved.tom"))
	require.NoError(err)
	assert.Equal("JMP 1\n", string(data))
}

func TestEmulatorConcurrentPlay(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.SetText("MOV 1, AX\nADD AX, AX\nADD AX, AX")

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snap := emu.Play()
			assert.Equal(4, snap.Value(machine.REG_AX))
			assert.Equal(4, len(snap.Log))
		}()
	}
	wg.Wait()

	assert.Equal(4, emu.Runs())
}

func TestEmulatorVerboseRunRace(t *testing.T) {
	assert := assert.New(t)

	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	emu := NewEmulator()
	emu.Verbose = true
	emu.SetText("MOV 1, AX\nADD AX, AX")

	var wg sync.WaitGroup
	for n := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			switch n % 3 {
			case 0:
				snap := emu.Play()
				assert.LessOrEqual(snap.Steps, 2)
			case 1:
				emu.Run("MOV 2, AX")
			default:
				emu.Reset()
			}
		}()
	}
	wg.Wait()

	snap := emu.Play()
	assert.Equal(2, snap.Value(machine.REG_AX))
	assert.Equal(2, snap.Steps)
	assert.Equal(3, len(snap.Log))
}
