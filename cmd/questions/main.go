package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"questions/internal/config"
	"questions/internal/corpus"
	"questions/internal/logger"
	"questions/internal/segmenter"
	"questions/internal/service"
	"questions/internal/tokenizer"
	"questions/internal/tui"
)

const usage = "Usage: questions [--config=config.yaml] [--interactive] corpus"

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("questions", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var cfgPath string
	var interactive bool
	fs.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/questions/config.yaml if not provided)")
	fs.BoolVar(&interactive, "interactive", false, "Start an interactive query session")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, usage)
		return 1
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format, stderr)

	seg, err := segmenter.NewSegmenter()
	if err != nil {
		slog.Error("segmenter init failed", "error", err)
		return 1
	}
	tok := tokenizer.NewTokenizer(cfg.Tokenizer.ExtraStopwords...)
	svc := service.NewQuestionService(
		corpus.NewDirLoader(cfg.Corpus.Extensions...),
		tok,
		seg,
		service.Options{
			FileMatches:     cfg.Ranking.FileMatches,
			SentenceMatches: cfg.Ranking.SentenceMatches,
			Workers:         cfg.Corpus.Workers,
		},
	)
	summary, err := svc.Ingest(ctx, fs.Arg(0))
	if err != nil {
		slog.Error("ingest failed", "corpus", fs.Arg(0), "error", err)
		return 1
	}

	if interactive {
		p := tea.NewProgram(tui.New(ctx, svc, tok, summary), tea.WithContext(ctx), tea.WithInput(stdin), tea.WithOutput(stdout))
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			slog.Error("interactive session failed", "error", err)
			return 1
		}
		return 0
	}

	fmt.Fprint(stdout, "Query: ")
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		slog.Error("reading query failed", "error", err)
		return 1
	}
	answers, err := svc.Answer(ctx, strings.TrimSpace(line))
	if err != nil {
		slog.Error("answer failed", "error", err)
		return 1
	}
	for _, a := range answers {
		fmt.Fprintln(stdout, a.Sentence)
	}
	return 0
}
