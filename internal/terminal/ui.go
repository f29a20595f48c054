package terminal

import (
	"fmt"
	"io"
	"sync"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
)

// UI is a terminal UI
type UI interface {
	AutoConfirm() bool
	AskOne(answer interface{}, prompt survey.Prompt, opts ...survey.AskOpt) error
	Ask(answers interface{}, questions ...*survey.Question) error
	Confirm(format string, args ...interface{}) (bool, error)
	Print(logs ...Log)
}

// UIConfig holds the global config for the CLI ui
type UIConfig struct {
	AutoConfirm   bool
	DisableColors bool
	OutputFormat  OutputFormat
	OutputTarget  string
}

// NewUI creates a new terminal UI
func NewUI(config UIConfig, in io.Reader, out, err io.Writer) UI {
	noColor := config.DisableColors
	if config.OutputFormat == OutputFormatJSON {
		noColor = true
	}
	color.NoColor = noColor

	return &ui{
		config: config,
		in:     in,
		out:    out,
		err:    err,
	}
}

type ui struct {
	mu     sync.Mutex
	config UIConfig
	in     io.Reader
	out    io.Writer
	err    io.Writer
}

func (ui *ui) AutoConfirm() bool {
	return ui.config.AutoConfirm
}

func (ui *ui) AskOne(answer interface{}, prompt survey.Prompt, opts ...survey.AskOpt) error {
	return survey.AskOne(prompt, answer, append(opts, survey.WithStdio(ui.stdio()))...)
}

func (ui *ui) Ask(answers interface{}, questions ...*survey.Question) error {
	return survey.Ask(questions, answers, survey.WithStdio(ui.stdio()))
}

func (ui *ui) Confirm(format string, args ...interface{}) (bool, error) {
	if ui.config.AutoConfirm {
		return true, nil
	}

	var ok bool
	if err := ui.AskOne(&ok, &survey.Confirm{Message: fmt.Sprintf(format, args...)}); err != nil {
		return false, err
	}
	return ok, nil
}

func (ui *ui) Print(logs ...Log) {
	ui.mu.Lock()
	defer ui.mu.Unlock()

	for _, log := range logs {
		output, err := log.Print(ui.config.OutputFormat)
		if err != nil {
			fmt.Fprintln(ui.err, err)
			continue
		}

		writer := ui.out
		if log.Level == LogLevelError {
			writer = ui.err
		}

		fmt.Fprintln(writer, output)
	}
}

func (ui *ui) stdio() (terminal.FileReader, terminal.FileWriter, io.Writer) {
	in, ok := ui.in.(terminal.FileReader)
	if !ok {
		in = noopFdReader{ui.in}
	}
	out, ok := ui.out.(terminal.FileWriter)
	if !ok {
		out = noopFdWriter{ui.out}
	}
	return in, out, ui.err
}

type noopFdReader struct {
	io.Reader
}

func (r noopFdReader) Fd() uintptr {
	return 0
}

type noopFdWriter struct {
	io.Writer
}

func (w noopFdWriter) Fd() uintptr {
	return 0
}
