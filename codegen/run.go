package codegen

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
)

// Config parameterizes the compile-and-run pipeline. The zero value is
// usable: it builds with the "go" tool from PATH and resolves the
// runtime module from the current directory.
type Config struct {
	// ModuleDir is the local path of the gopeg module the generated
	// parser is compiled against (target of the replace directive in the
	// temporary module). Empty means the current directory.
	ModuleDir string

	// GoTool names the Go toolchain binary. Empty means "go".
	GoTool string

	// KeepTemp leaves the temporary build module on disk for inspection.
	KeepTemp bool

	// Stdout and Stderr receive the generated parser's output. Empty
	// means the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

const tempGoMod = `module gopeg-printer

go 1.15

require github.com/npillmayer/gopeg v0.0.0

replace github.com/npillmayer/gopeg => %s
`

// PrintParseTree materializes the generated parser source as a
// temporary Go module, compiles it, runs the binary on the input file
// and forwards its tree dump. It returns the parser's exit status;
// compile and setup failures return a non-zero status with an error.
func (cfg Config) PrintParseTree(source string, inputPath string) (int, error) {
	goTool := cfg.GoTool
	if goTool == "" {
		goTool = "go"
	}
	stdout, stderr := cfg.Stdout, cfg.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	moduleDir, err := filepath.Abs(cfg.ModuleDir)
	if err != nil {
		return 1, err
	}
	inputAbs, err := filepath.Abs(inputPath)
	if err != nil {
		return 1, err
	}

	tempDir, err := ioutil.TempDir("", "gopeg-printer")
	if err != nil {
		return 1, fmt.Errorf("cannot create temp build dir: %w", err)
	}
	if cfg.KeepTemp {
		tracer().Infof("keeping temp build dir %s", tempDir)
	} else {
		defer os.RemoveAll(tempDir)
	}

	files := map[string]string{
		"main.go": source,
		"go.mod":  fmt.Sprintf(tempGoMod, moduleDir),
	}
	for name, content := range files {
		if err := ioutil.WriteFile(filepath.Join(tempDir, name), []byte(content), 0644); err != nil {
			return 1, fmt.Errorf("cannot write %s: %w", name, err)
		}
	}

	printer := filepath.Join(tempDir, "printer")
	build := exec.Command(goTool, "build", "-o", printer, ".")
	build.Dir = tempDir
	build.Stdout = stderr
	build.Stderr = stderr
	tracer().Debugf("compiling generated parser in %s", tempDir)
	if err := build.Run(); err != nil {
		return 1, fmt.Errorf("compiling generated parser failed: %w", err)
	}

	run := exec.Command(printer, inputAbs)
	run.Stdout = stdout
	run.Stderr = stderr
	if err := run.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("running generated parser failed: %w", err)
	}
	return 0, nil
}
