package script

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/tom/emulator"
)

func TestExec(t *testing.T) {
	assert := assert.New(t)

	lesson := strings.Join([]string{
		`run("MOV 5, AX\nMOV 3, BX\nADD BX, AX")`,
		`check(register("AX") == 8, "AX is 8")`,
		`check(register("BX") == 3)`,
		`check(zx() == 0, "ZX is clear")`,
		`check(len(log()) == 4, "one entry per line")`,
		`print(log()[-1])`,
		`run("JMP 1")`,
		`check(len(log()) == COMMAND_LIMIT + 2, "loop is stopped")`,
		`reset()`,
		`check(log() == ["Resetting all registers to their defaults..."])`,
	}, "\n")

	out := &bytes.Buffer{}
	sc := &Script{Emulator: emulator.NewEmulator(), Output: out}
	err := sc.Exec("lesson.star", lesson)
	assert.NoError(err)
	assert.Equal("Line 3: Adding BX to AX\n", out.String())

	total, failed := sc.Checks()
	assert.Equal(6, total)
	assert.Equal(0, failed)
}

func TestExec_Play(t *testing.T) {
	assert := assert.New(t)

	emu := emulator.NewEmulator()
	emu.SetText("MOV 300, CX")

	out := &bytes.Buffer{}
	err := Exec(emu, "play.star", `
play()
check(register("CX") == REGISTER_MAX)
check("above 255" in log()[1])
`, out)
	assert.NoError(err)
	assert.Equal("", out.String())
	assert.Equal(1, emu.Runs())
}

func TestExec_CheckFailed(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	out := &bytes.Buffer{}
	err := Exec(emulator.NewEmulator(), "fail.star", `
run("MOV 1, AX")
check(register("AX") == 2, "AX is 2")
check(register("AX") == 1, "AX is 1")
`, out)
	require.Error(err)
	assert.ErrorIs(err, ErrCheckFailed)

	var checkErr *ErrCheck
	require.ErrorAs(err, &checkErr)
	assert.Equal(1, checkErr.Failed)
	assert.Equal(2, checkErr.Total)
	assert.True(strings.HasPrefix(out.String(), "fail.star:3:"), out.String())
	assert.True(strings.HasSuffix(out.String(), ": check failed: AX is 2\n"), out.String())
}

func TestExec_Errors(t *testing.T) {
	assert := assert.New(t)

	emu := emulator.NewEmulator()

	err := Exec(emu, "reg.star", `register("IX")`, &bytes.Buffer{})
	assert.ErrorContains(err, "'IX' is not a register")

	err = Exec(emu, "args.star", `run()`, &bytes.Buffer{})
	assert.Error(err)

	err = Exec(emu, "syntax.star", `run(`, &bytes.Buffer{})
	assert.Error(err)
}
