// Package repl provides the interactive quick-log shell: one-line
// commands for the daily logging loop, so a user can keep a terminal
// open and type "mood 7" without re-invoking the CLI.
package repl

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/wellkit/wellkit/internal/ids"
	"github.com/wellkit/wellkit/internal/insights"
	"github.com/wellkit/wellkit/internal/interaction"
	"github.com/wellkit/wellkit/internal/storage"
	"github.com/wellkit/wellkit/internal/streak"
	"github.com/wellkit/wellkit/internal/types"
)

// REPL represents the interactive shell
type REPL struct {
	store    storage.Storage
	detector *interaction.Detector
	engine   *insights.Engine
	idgen    ids.Generator
	rl       *readline.Instance
	ctx      context.Context
	commands map[string]CommandHandler
}

// CommandHandler handles a specific command
type CommandHandler func(args []string) error

// Config holds REPL configuration
type Config struct {
	Store    storage.Storage
	Detector *interaction.Detector
	Engine   *insights.Engine
	IDGen    ids.Generator
}

// New creates a new REPL instance
func New(cfg *Config) (*REPL, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("storage is required")
	}
	if cfg.Detector == nil {
		return nil, fmt.Errorf("detector is required")
	}

	engine := cfg.Engine
	if engine == nil {
		engine = insights.NewEngine()
	}
	idgen := cfg.IDGen
	if idgen == nil {
		idgen = ids.UUID{}
	}

	r := &REPL{
		store:    cfg.Store,
		detector: cfg.Detector,
		engine:   engine,
		idgen:    idgen,
		commands: make(map[string]CommandHandler),
	}
	r.registerCommands()
	return r, nil
}

// Run starts the REPL loop
func (r *REPL) Run(ctx context.Context) error {
	r.ctx = ctx

	cyan := color.New(color.FgCyan).SprintFunc()
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            cyan("wellkit> "),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()
	r.rl = rl

	r.printWelcome()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			} else if err == io.EOF {
				fmt.Println("\nGoodbye!")
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := r.processInput(line); err != nil {
			if err == io.EOF {
				return nil
			}
			red := color.New(color.FgRed).SprintFunc()
			fmt.Printf("%s %v\n", red("Error:"), err)
		}
	}
}

// processInput processes a single line of input
func (r *REPL) processInput(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	command := parts[0]
	args := parts[1:]

	handler, ok := r.commands[command]
	if !ok {
		return fmt.Errorf("unknown command %q (try 'help')", command)
	}
	return handler(args)
}

func (r *REPL) registerCommands() {
	r.commands["help"] = r.cmdHelp
	r.commands["?"] = r.cmdHelp
	r.commands["exit"] = r.cmdExit
	r.commands["quit"] = r.cmdExit
	r.commands["mood"] = r.cmdMood
	r.commands["symptom"] = r.cmdSymptom
	r.commands["trigger"] = r.cmdTrigger
	r.commands["dose"] = r.cmdDose
	r.commands["meds"] = r.cmdMeds
	r.commands["check"] = r.cmdCheck
	r.commands["streak"] = r.cmdStreak
	r.commands["insights"] = r.cmdInsights
}

func (r *REPL) printWelcome() {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Printf("\n%s\n", cyan("wellkit interactive log"))
	fmt.Println("Type 'help' for available commands, 'exit' to quit")
	fmt.Println()
}

func parseScale(value, name string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 || n > 10 {
		return 0, fmt.Errorf("%s must be a number from 1 to 10", name)
	}
	return n, nil
}

func (r *REPL) cmdMood(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: mood <1-10> [note...]")
	}
	rating, err := parseScale(args[0], "rating")
	if err != nil {
		return err
	}

	entry := &types.MoodEntry{
		ID:        r.idgen.NewID(),
		Timestamp: time.Now(),
		Rating:    rating,
		Note:      strings.Join(args[1:], " "),
	}
	if err := r.store.AddMood(r.ctx, entry); err != nil {
		return err
	}
	r.ok("logged mood %d", rating)
	return nil
}

func (r *REPL) cmdSymptom(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: symptom <type> <severity 1-10>")
	}
	severity, err := parseScale(args[len(args)-1], "severity")
	if err != nil {
		return err
	}
	symptomType := strings.ToLower(strings.Join(args[:len(args)-1], " "))

	entry := &types.SymptomEntry{
		ID:        r.idgen.NewID(),
		Timestamp: time.Now(),
		Type:      symptomType,
		Severity:  severity,
	}
	if err := r.store.AddSymptom(r.ctx, entry); err != nil {
		return err
	}
	r.ok("logged symptom %q severity %d", symptomType, severity)
	return nil
}

func (r *REPL) cmdTrigger(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: trigger <description> <intensity 1-10>")
	}
	intensity, err := parseScale(args[len(args)-1], "intensity")
	if err != nil {
		return err
	}
	description := strings.Join(args[:len(args)-1], " ")

	entry := &types.TriggerEntry{
		ID:           r.idgen.NewID(),
		Description:  description,
		Intensity:    intensity,
		LastOccurred: time.Now(),
	}
	if err := r.store.AddTrigger(r.ctx, entry); err != nil {
		return err
	}
	r.ok("logged trigger %q intensity %d", description, intensity)
	return nil
}

func (r *REPL) cmdDose(args []string) error {
	taken := true
	if len(args) > 0 {
		switch args[0] {
		case "taken":
		case "missed":
			taken = false
		default:
			return fmt.Errorf("usage: dose [taken|missed]")
		}
	}

	entry := &types.DoseEntry{
		ID:        r.idgen.NewID(),
		Timestamp: time.Now(),
		Taken:     taken,
	}
	if err := r.store.AddDose(r.ctx, entry); err != nil {
		return err
	}
	if taken {
		r.ok("logged dose taken")
	} else {
		r.ok("logged missed dose")
	}
	return nil
}

func (r *REPL) cmdMeds(args []string) error {
	meds, err := r.store.GetMedications(r.ctx)
	if err != nil {
		return err
	}
	if len(meds) == 0 {
		fmt.Println("No medications yet. Add one with 'wellkit med add'.")
		return nil
	}

	green := color.New(color.FgGreen).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()
	for _, med := range meds {
		marker := gray("○ inactive")
		if med.Active {
			marker = green("● active")
		}
		fmt.Printf("  %s  %s\n", marker, med.Name)
	}
	return nil
}

func (r *REPL) cmdCheck(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: check <medication name>")
	}
	candidate := strings.Join(args, " ")

	meds, err := r.store.GetActiveMedications(r.ctx)
	if err != nil {
		return err
	}

	matches := r.detector.Detect(interaction.ActiveNames(meds), candidate)
	if len(matches) == 0 {
		r.ok("no known interactions with %q", candidate)
		return nil
	}

	interaction.SortBySeverity(matches)
	for _, m := range matches {
		fmt.Printf("  %s %s + %s: %s\n",
			severityIcon(m.Interaction.Severity), m.Med1, m.Med2, m.Interaction.Description)
	}
	return nil
}

func (r *REPL) cmdStreak(args []string) error {
	moods, err := r.store.GetMoods(r.ctx)
	if err != nil {
		return err
	}

	state := streak.Compute(streak.MoodDays(moods), time.Now())
	fmt.Printf("  Logging streak: %d day(s) current, %d longest\n", state.Current, state.Longest)
	return nil
}

func (r *REPL) cmdInsights(args []string) error {
	moods, err := r.store.GetMoods(r.ctx)
	if err != nil {
		return err
	}
	symptoms, err := r.store.GetSymptoms(r.ctx)
	if err != nil {
		return err
	}
	triggers, err := r.store.GetTriggers(r.ctx)
	if err != nil {
		return err
	}

	report := r.engine.Analyze(moods, symptoms, triggers)
	if report.InsufficientData {
		fmt.Printf("  Not enough mood entries yet (%d logged, %d needed).\n",
			report.MoodSampleSize, r.engine.MinMoodSamples)
		return nil
	}

	fmt.Printf("  Baseline mood %.1f over %d entries\n", report.BaselineMean, report.MoodSampleSize)
	for _, t := range report.TriggerImpacts {
		fmt.Printf("  trigger %q: impact %+.1f (n=%d)\n", t.Subject, t.Impact, t.SampleSize)
	}
	for _, s := range report.SymptomImpacts {
		fmt.Printf("  symptom %q: impact %+.1f, mean severity %.1f\n", s.Subject, s.Impact, s.MeanSeverity)
	}
	return nil
}

func (r *REPL) ok(format string, args ...interface{}) {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("%s %s\n", green("✓"), fmt.Sprintf(format, args...))
}

func severityIcon(s types.Severity) string {
	switch s {
	case types.SeveritySevere:
		return color.New(color.FgRed, color.Bold).Sprint("‼")
	case types.SeverityModerate:
		return color.New(color.FgYellow).Sprint("!")
	default:
		return color.New(color.FgHiBlack).Sprint("·")
	}
}

// cmdHelp shows help information
func (r *REPL) cmdHelp(args []string) error {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Printf("\n%s\n\n", cyan("Available Commands:"))

	commands := []struct {
		name string
		desc string
	}{
		{"mood <1-10> [note]", "Log a mood rating"},
		{"symptom <type> <1-10>", "Log a symptom with severity"},
		{"trigger <desc> <1-10>", "Log a trigger with intensity"},
		{"dose [taken|missed]", "Log a medication dose"},
		{"meds", "List medications"},
		{"check <name>", "Check a medication against your actives"},
		{"streak", "Show the mood logging streak"},
		{"insights", "Run correlation analysis"},
		{"help, ?", "Show this help message"},
		{"exit, quit", "Exit the shell"},
	}

	green := color.New(color.FgGreen).SprintFunc()
	for _, cmd := range commands {
		fmt.Printf("  %-24s %s\n", green(cmd.name), cmd.desc)
	}
	fmt.Println()
	return nil
}

// cmdExit exits the REPL
func (r *REPL) cmdExit(args []string) error {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("\n%s Goodbye!\n", green("✓"))
	r.rl.Close()
	return io.EOF
}
