// Package cli drives the interactive prompt sequence and prints the report.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/swelljoe/duskgold/internal/i18n"
	"github.com/swelljoe/duskgold/internal/report"
	"github.com/swelljoe/duskgold/internal/sun"
	"github.com/swelljoe/duskgold/internal/weather"
)

// Exit codes per error kind
const (
	ExitOK = iota
	ExitFailure
	ExitBadDate
	ExitLocationNotFound
	ExitNetwork
	ExitInvalidCoordinates
	ExitNoSunEvent
	ExitInvalidTimezone
)

const menu = `请选择语言 / Select language / Sprache wählen
1. 中文
2. English
3. Deutsch
`

const menuPrompt = "请输入数字 / Enter number / Nummer eingeben: "

const dateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ReportBuilder produces the report for a city and date
type ReportBuilder interface {
	BuildReport(ctx context.Context, city string, date time.Time) (*weather.Report, error)
}

// FormatError reports a date answer that is not YYYY-MM-DD
type FormatError struct {
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid date %q (want YYYY-MM-DD): %v", e.Input, e.Err)
	}
	return fmt.Sprintf("invalid date %q (want YYYY-MM-DD)", e.Input)
}

func (e *FormatError) Unwrap() error { return e.Err }

// App holds the console streams and dependencies for one run
type App struct {
	In      io.Reader
	Out     io.Writer
	Clock   Clock
	Reports ReportBuilder
	Logger  *zap.Logger

	// Lang is the language chosen during Run; English until then.
	Lang i18n.Lang
}

// Run prompts for language, date and city, then prints the report
func (a *App) Run(ctx context.Context) error {
	if a.Logger == nil {
		a.Logger = zap.NewNop()
	}
	if a.Clock == nil {
		a.Clock = SystemClock{}
	}
	a.Lang = i18n.English
	in := bufio.NewReader(a.In)

	// Select language
	fmt.Fprint(a.Out, menu)
	choice, err := prompt(a.Out, in, menuPrompt)
	if err != nil {
		return err
	}
	lang, ok := i18n.ParseChoice(choice)
	if !ok {
		fmt.Fprintln(a.Out, i18n.T(lang, i18n.InvalidChoice))
	}
	a.Lang = lang
	fmt.Fprintf(a.Out, "%s\n\n", i18n.T(lang, i18n.Title))

	// Input date
	dateStr, err := prompt(a.Out, in, i18n.T(lang, i18n.InputDate))
	if err != nil {
		return err
	}
	date, err := ParseDate(dateStr, a.Clock)
	if err != nil {
		return err
	}

	// Input city
	city, err := prompt(a.Out, in, i18n.T(lang, i18n.InputCity))
	if err != nil {
		return err
	}

	a.Logger.Debug("query",
		zap.String("lang", string(lang)),
		zap.String("date", date.Format(dateLayout)),
		zap.String("city", city),
	)

	r, err := a.Reports.BuildReport(ctx, city, date)
	if err != nil {
		return err
	}

	return report.Render(a.Out, r, lang)
}

// prompt writes label and reads one trimmed line. EOF counts as an empty
// answer.
func prompt(w io.Writer, in *bufio.Reader, label string) (string, error) {
	fmt.Fprint(w, label)
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ParseDate turns a prompt answer into a calendar date at UTC midnight.
// An empty answer means today according to clock.
func ParseDate(input string, clock Clock) (time.Time, error) {
	if input == "" {
		y, m, d := clock.Now().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	if !datePattern.MatchString(input) {
		return time.Time{}, &FormatError{Input: input}
	}
	t, err := time.Parse(dateLayout, input)
	if err != nil {
		return time.Time{}, &FormatError{Input: input, Err: err}
	}
	return t, nil
}

// ExitCode maps an error returned by Run to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var formatErr *FormatError
	var netErr *weather.NetworkError
	switch {
	case errors.As(err, &formatErr):
		return ExitBadDate
	case errors.Is(err, weather.ErrLocationNotFound):
		return ExitLocationNotFound
	case errors.As(err, &netErr):
		return ExitNetwork
	case errors.Is(err, sun.ErrInvalidCoordinates):
		return ExitInvalidCoordinates
	case errors.Is(err, sun.ErrNoSunEvent):
		return ExitNoSunEvent
	case errors.Is(err, sun.ErrInvalidTimezone):
		return ExitInvalidTimezone
	default:
		return ExitFailure
	}
}
