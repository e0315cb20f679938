package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"SolTools/internal/accounts"
	"SolTools/internal/logsink"
	"SolTools/internal/ops/keyvault"
	"SolTools/internal/vanity"
	"SolTools/pkg/config"
	"SolTools/pkg/i18n"
	"SolTools/pkg/logx"
)

type Runner struct {
	in                   *bufio.Reader
	Msgs                 i18n.Messages
	HideSecretsInConsole bool
	Workers              int
}

func NewRunner(msgs i18n.Messages) *Runner {
	return &Runner{in: bufio.NewReader(os.Stdin), Msgs: msgs}
}

func (r *Runner) prompt() string {
	text, _ := r.in.ReadString('\n')
	return strings.TrimSpace(text)
}

// promptHidden reads a line without echoing it (passwords, secret keys).
func (r *Runner) promptHidden() string {
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		// not a terminal (piped input) — fall back to plain read
		return r.prompt()
	}
	return strings.TrimSpace(string(raw))
}

func (r *Runner) Run() {
	m := r.Msgs
	for {
		fmt.Println()
		fmt.Println(m.AppTitle)
		fmt.Println(m.MenuStandard)
		fmt.Println(m.MenuHD)
		fmt.Println(m.MenuVanity)
		fmt.Println(m.MenuImport)
		fmt.Println(m.MenuEncrypt)
		fmt.Println(m.MenuDecrypt)
		fmt.Println(m.MenuExit)
		fmt.Print("> ")
		choice := strings.ToLower(r.prompt())
		switch choice {
		case "1":
			r.handleStandard()
		case "2":
			r.handleHD()
		case "3":
			r.handleVanity()
		case "4":
			r.handleImport()
		case "5":
			r.handleEncrypt()
		case "6":
			r.handleDecrypt()
		case "":
			return
		default:
			fmt.Println(m.UnknownCommand, choice)
		}
	}
}

func (r *Runner) handleStandard() {
	fmt.Print(r.Msgs.PromptCount)
	count := atoiDefault(r.prompt(), 5)

	svc := accounts.NewService(nil)
	batch, err := svc.GenerateStandardBatch(count)
	if err != nil {
		logx.S().Errorw("standard batch failed", "count", count, "err", err)
		return
	}
	r.sinkBatch("standard", batch)
}

func (r *Runner) handleHD() {
	fmt.Print(r.Msgs.PromptCount)
	count := atoiDefault(r.prompt(), 5)
	fmt.Print(r.Msgs.PromptWords)
	words := atoiDefault(r.prompt(), 12)

	svc := accounts.NewService(nil)
	batch, err := svc.GenerateHDBatch(count, words)
	if err != nil {
		logx.S().Errorw("hd batch failed", "count", count, "words", words, "err", err)
		return
	}
	r.sinkBatch("hd", batch)
}

// sinkBatch logs each generated account and persists the batch plus the
// multi-send export records under a fresh run directory.
func (r *Runner) sinkBatch(module string, batch *accounts.Batch) {
	dir, err := logsink.MakeModuleDirs("logs", module)
	if err != nil {
		logx.S().Errorw("make run dir failed", "module", module, "err", err)
		return
	}

	if batch.Mnemonic != "" {
		if r.HideSecretsInConsole {
			logx.S().Infow("mnemonic generated", "words", len(strings.Fields(batch.Mnemonic)))
		} else {
			logx.S().Infow("mnemonic generated", "mnemonic", batch.Mnemonic)
		}
		line := fmt.Sprintf("mnemonic=%q", batch.Mnemonic)
		_ = logsink.WriteRecord(dir, "batch", line, false)
	}

	for _, kp := range batch.Keys {
		rec := map[string]any{
			"address": kp.Address(),
			"secret":  kp.SecretBase58(),
		}
		if kp.Path != "" {
			rec["path"] = kp.Path
			rec["index"] = kp.Index
		}
		if err := logsink.WriteRecord(dir, "batch", rec, true); err != nil {
			logx.S().Errorw("batch record write failed", "addr", kp.Address(), "err", err)
		}
		if r.HideSecretsInConsole {
			logx.S().Infow("ACCOUNT", "address", kp.Address(), "path", kp.Path)
		} else {
			logx.S().Infow("ACCOUNT", "address", kp.Address(), "path", kp.Path, "secret", kp.SecretBase58())
		}
	}

	recs := accounts.ExportRecords(batch)
	if err := accounts.WriteExportJSONL(filepath.Join(dir, "export.jsonl"), recs); err != nil {
		logx.S().Errorw("export write failed", "err", err)
		return
	}
	logx.S().Infow("batch written", "module", module, "accounts", len(batch.Keys), "dir", dir)
}

func (r *Runner) handleVanity() {
	m := r.Msgs

	cfg, err := config.LoadVanity(filepath.Join("configs", "vanity.yaml"))
	if err != nil {
		// config is optional for this mode
		cfg = &config.VanityConfig{CaseSensitive: true}
	}

	if len(cfg.Presets) > 0 {
		for _, p := range cfg.Presets {
			fmt.Printf("  @%s: prefix=%q suffix=%q\n", p.Name, p.Prefix, p.Suffix)
		}
	}
	fmt.Print(m.PromptPrefix)
	prefix := r.prompt()
	var suffix string
	if preset := findPreset(cfg.Presets, prefix); preset != nil {
		prefix = preset.Prefix
		suffix = preset.Suffix
	} else {
		fmt.Print(m.PromptSuffix)
		suffix = r.prompt()
	}
	fmt.Print(m.PromptCaseSens)
	caseSens := yesNoDefault(r.prompt(), cfg.CaseSensitive)
	fmt.Print(m.PromptMaxAttempts)
	maxIn := atoiDefault(r.prompt(), int(cfg.MaxAttempts))
	if maxIn < 0 {
		maxIn = 0
	}
	maxAttempts := uint64(maxIn)

	pattern := vanity.Pattern{Prefix: prefix, Suffix: suffix, CaseSensitive: caseSens}
	if err := pattern.Validate(); err != nil {
		logx.S().Errorw("invalid pattern", "err", err)
		return
	}

	dir, err := logsink.MakeModuleDirs("logs", "vanity")
	if err != nil {
		logx.S().Errorw("make run dir failed", "err", err)
		return
	}
	logPath := filepath.Join(dir, "app.log")
	if err := logx.Init(logx.Config{Level: "info", FilePath: logPath, ConsoleOnly: false, HideSecretsInConsole: r.HideSecretsInConsole}); err != nil {
		logx.S().Errorw("logx init for vanity failed", "err", err)
		return
	}

	logx.S().Infow(m.VanityEstimate,
		"legacy", vanity.Estimate(pattern),
		"exact", vanity.EstimateExact(pattern),
	)

	sample := 10 * time.Second
	if cfg.SampleIntervalMS > 0 {
		sample = time.Duration(cfg.SampleIntervalMS) * time.Millisecond
	}
	workers := r.Workers
	if cfg.Workers > 0 {
		workers = cfg.Workers
	}

	ctx := withInterrupt(context.Background())
	search, err := vanity.StartSearch(ctx, vanity.Options{
		Pattern:         pattern,
		MaxAttempts:     maxAttempts,
		Workers:         workers,
		CheckpointEvery: cfg.CheckpointEvery,
		SampleInterval:  sample,
	})
	if err != nil {
		logx.S().Errorw("vanity start failed", "err", err)
		return
	}
	logx.S().Infow(m.VanityStarted,
		"prefix", prefix, "suffix", suffix,
		"case_sensitive", caseSens, "max_attempts", maxAttempts,
		"workers", workers,
	)

	updates := search.Updates()
	for {
		select {
		case st, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			logx.S().Infow("progress",
				"attempts", st.Attempts,
				"rate_addr_per_sec", fmt.Sprintf("%.2f", st.Rate),
				"elapsed", humanDuration(time.Duration(st.ElapsedSecs*float64(time.Second))),
			)
		case out := <-search.Done():
			r.reportOutcome(dir, out)
			return
		}
	}
}

func (r *Runner) reportOutcome(dir string, out vanity.Outcome) {
	elapsed := humanDuration(time.Duration(out.Stats.ElapsedSecs * float64(time.Second)))
	switch out.State {
	case vanity.StateFound:
		res := out.Result
		if r.HideSecretsInConsole {
			logx.S().Infow("FOUND",
				"address", res.Address,
				"matched", res.Matched.String(),
				"attempt", res.Attempts,
				"elapsed", elapsed,
			)
		} else {
			logx.S().Infow("FOUND",
				"address", res.Address,
				"matched", res.Matched.String(),
				"attempt", res.Attempts,
				"elapsed", elapsed,
				"secret", res.Key.SecretBase58(),
			)
		}
		rec := map[string]any{
			"address":  res.Address,
			"secret":   res.Key.SecretBase58(),
			"matched":  res.Matched.String(),
			"attempts": res.Attempts,
			"elapsed":  res.Elapsed.String(),
			"prefix":   res.Pattern.Prefix,
			"suffix":   res.Pattern.Suffix,
		}
		if err := logsink.WriteRecord(dir, "found", rec, true); err != nil {
			logx.S().Errorw("found record write failed", "err", err)
		}
	case vanity.StateExhausted:
		logx.S().Infow("NOT FOUND", "attempts", out.Stats.Attempts, "elapsed", elapsed)
	case vanity.StateCancelled:
		logx.S().Infow(r.Msgs.VanityCancelled, "attempts", out.Stats.Attempts, "elapsed", elapsed)
	case vanity.StateFailed:
		logx.S().Errorw("search failed", "err", out.Err, "attempts", out.Stats.Attempts)
	}
}

func (r *Runner) handleImport() {
	fmt.Print(r.Msgs.PromptSecret)
	secret := r.promptHidden()

	kp, err := accounts.ImportSecret(secret)
	if err != nil {
		logx.S().Errorw("import failed", "err", err)
		return
	}
	logx.S().Infow(r.Msgs.ImportedAddress, "address", kp.Address())
}

func (r *Runner) handleEncrypt() {
	fmt.Print(r.Msgs.PromptPassword)
	pwd := r.promptHidden()
	fmt.Print(r.Msgs.PromptHint)
	hint := r.prompt()
	_ = keyvault.EncryptSecrets(withInterrupt(context.Background()), keyvault.EncryptOptions{
		InputsBaseDir: "inputs", LogsBase: "logs",
		Password: pwd, PassHint: hint,
		HideSecretsInConsole: r.HideSecretsInConsole,
	})
}

func (r *Runner) handleDecrypt() {
	fmt.Print(r.Msgs.PromptPassword)
	pwd := r.promptHidden()
	_ = keyvault.DecryptVaults(withInterrupt(context.Background()), keyvault.DecryptOptions{
		InputsBaseDir: "inputs", LogsBase: "logs",
		Password: pwd, HideSecretsInConsole: r.HideSecretsInConsole,
	})
}

// findPreset resolves an "@name" entry typed at the prefix prompt.
func findPreset(presets []config.Preset, input string) *config.Preset {
	name, ok := strings.CutPrefix(input, "@")
	if !ok {
		return nil
	}
	for i := range presets {
		if presets[i].Name == name {
			return &presets[i]
		}
	}
	return nil
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	var n int
	if _, err := fmt.Sscan(s, &n); err != nil {
		return def
	}
	return n
}

func yesNoDefault(s string, def bool) bool {
	switch strings.ToLower(s) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return def
	}
}

func humanDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
}

func withInterrupt(parent context.Context) context.Context {
	ctx, cancel := context.WithCancel(parent)
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ch
		cancel()
	}()
	return ctx
}
