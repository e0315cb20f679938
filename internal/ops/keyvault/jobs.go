package keyvault

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"SolTools/internal/keypair"
	"SolTools/internal/keystore"
	"SolTools/internal/logsink"
	"SolTools/pkg/logx"
)

// EncryptOptions controls an encryption job.
type EncryptOptions struct {
	InputsBaseDir        string // e.g. "inputs"
	LogsBase             string // e.g. "logs"
	Password             string // required
	PassHint             string // optional text stored near the outputs
	HideSecretsInConsole bool
}

// DecryptOptions controls a decryption job.
type DecryptOptions struct {
	InputsBaseDir        string
	LogsBase             string
	Password             string
	HideSecretsInConsole bool
}

// EncryptSecrets reads inputs/encrypt/secrets.txt (one base58 secret per
// line, # comments allowed) and seals each under one password. Results:
//
//	logs/encrypt/<DD.MM.YYYY>/encrypt_<HH-MM-SS>/app.log
//	logs/encrypt/.../all.jsonl (one vault JSON per line)
//	logs/encrypt/.../files/<address>.json (one file per wallet)
func EncryptSecrets(ctx context.Context, opt EncryptOptions) error {
	const module = "encrypt"

	dir, err := logsink.MakeModuleDirs(opt.LogsBase, module)
	if err != nil {
		return err
	}
	_ = logsink.WriteHint(dir, opt.PassHint)

	logPath := filepath.Join(dir, "app.log")
	if err := logx.Init(logx.Config{Level: "info", FilePath: logPath, ConsoleOnly: false, HideSecretsInConsole: opt.HideSecretsInConsole}); err != nil {
		return fmt.Errorf("logx init failed: %w", err)
	}
	defer logx.Close()
	app := logx.S()

	inFile := filepath.Join(opt.InputsBaseDir, "encrypt", "secrets.txt")
	f, err := os.Open(inFile)
	if err != nil {
		return fmt.Errorf("open secrets.txt: %w", err)
	}
	defer f.Close()

	filesDir := filepath.Join(dir, "files")
	if err := os.MkdirAll(filesDir, 0o755); err != nil {
		return fmt.Errorf("mkdir files: %w", err)
	}

	app.Infow("encrypt started", "inputs", inFile, "out", dir)

	reader := bufio.NewReader(f)
	allPath := filepath.Join(dir, "all.jsonl")

	var total, okCnt, failCnt int
	start := time.Now()

	for {
		if ctx.Err() != nil {
			break
		}
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			app.Errorw("read line failed", "err", err)
			break
		}
		raw := strings.TrimSpace(line)
		if raw == "" || strings.HasPrefix(raw, "#") {
			if errors.Is(err, io.EOF) {
				break
			}
			continue
		}
		total++

		kp, perr := keypair.FromSecretString(raw)
		if perr != nil {
			failCnt++
			app.Errorw("parse secret failed", "err", perr)
			if errors.Is(err, io.EOF) {
				break
			}
			continue
		}

		addr := kp.Address()
		blob, kerr := EncryptKey(kp, opt.Password)
		if kerr != nil {
			failCnt++
			app.Errorw("vault encrypt failed", "addr", addr, "err", kerr)
			if errors.Is(err, io.EOF) {
				break
			}
			continue
		}

		if werr := keystore.AppendJSONL(allPath, blob); werr != nil {
			failCnt++
			app.Errorw("append jsonl failed", "addr", addr, "err", werr)
			continue
		}
		if werr := keystore.WriteFileJSON(filepath.Join(filesDir, addr+".json"), blob); werr != nil {
			failCnt++
			app.Errorw("write single vault failed", "addr", addr, "err", werr)
			continue
		}

		okCnt++
		if !opt.HideSecretsInConsole {
			app.Infow("ENCRYPTED", "address", addr, "secret", kp.SecretBase58())
		} else {
			app.Infow("ENCRYPTED", "address", addr)
		}

		if errors.Is(err, io.EOF) {
			break
		}
	}

	app.Infow("encrypt finished", "total", total, "ok", okCnt, "failed", failCnt, "elapsed", time.Since(start).String())
	return nil
}

// DecryptVaults reads inputs/decrypt/{all.jsonl, *.json, files/*.json}
// and writes raw secrets into logs/decrypt/.../all.txt as
// "address:secret" lines.
func DecryptVaults(ctx context.Context, opt DecryptOptions) error {
	const module = "decrypt"

	dir, err := logsink.MakeModuleDirs(opt.LogsBase, module)
	if err != nil {
		return err
	}
	logPath := filepath.Join(dir, "app.log")
	if err := logx.Init(logx.Config{Level: "info", FilePath: logPath, ConsoleOnly: false, HideSecretsInConsole: opt.HideSecretsInConsole}); err != nil {
		return fmt.Errorf("logx init failed: %w", err)
	}
	defer logx.Close()
	app := logx.S()

	inDir := filepath.Join(opt.InputsBaseDir, "decrypt")
	outAll := filepath.Join(dir, "all.txt")

	outF, err := os.Create(outAll)
	if err != nil {
		return fmt.Errorf("create all.txt: %w", err)
	}
	defer outF.Close()

	files := collectInputFiles(inDir)
	if len(files) == 0 {
		app.Warnw("no vault files found", "dir", inDir)
		return nil
	}

	app.Infow("decrypt started", "inputs", inDir, "out", dir, "files", len(files))

	writeLine := func(addr, secret string) error {
		_, err := fmt.Fprintf(outF, "%s:%s\n", addr, secret)
		return err
	}

	var total, okCnt, failCnt int
	start := time.Now()

	for _, p := range files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if strings.HasSuffix(p, ".jsonl") {
			f, err := os.Open(p)
			if err != nil {
				app.Errorw("open jsonl failed", "file", p, "err", err)
				continue
			}
			sc := bufio.NewScanner(f)
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					continue
				}
				total++
				kp, derr := DecryptKey([]byte(line), opt.Password)
				if derr != nil {
					failCnt++
					app.Errorw("decrypt failed", "file", p, "err", derr)
					continue
				}
				okCnt++
				_ = writeLine(kp.Address(), kp.SecretBase58())
				if !opt.HideSecretsInConsole {
					app.Infow("DECRYPTED", "address", kp.Address(), "secret", kp.SecretBase58())
				} else {
					app.Infow("DECRYPTED", "address", kp.Address())
				}
			}
			_ = f.Close()
			if err := sc.Err(); err != nil {
				app.Errorw("scan jsonl failed", "file", p, "err", err)
			}
			continue
		}

		blob, err := os.ReadFile(p)
		if err != nil {
			app.Errorw("read json failed", "file", p, "err", err)
			continue
		}
		total++
		kp, derr := DecryptKey(blob, opt.Password)
		if derr != nil {
			failCnt++
			app.Errorw("decrypt failed", "file", p, "err", derr)
			continue
		}
		okCnt++
		_ = writeLine(kp.Address(), kp.SecretBase58())
		if !opt.HideSecretsInConsole {
			app.Infow("DECRYPTED", "address", kp.Address(), "secret", kp.SecretBase58())
		} else {
			app.Infow("DECRYPTED", "address", kp.Address())
		}
	}

	app.Infow("decrypt finished", "total", total, "ok", okCnt, "failed", failCnt, "elapsed", time.Since(start).String())
	return nil
}

func collectInputFiles(inDir string) []string {
	var files []string
	allJSONL := filepath.Join(inDir, "all.jsonl")
	if st, err := os.Stat(allJSONL); err == nil && !st.IsDir() {
		files = append(files, allJSONL)
	}
	entries, _ := os.ReadDir(inDir)
	for _, de := range entries {
		if de.IsDir() {
			// support inputs/decrypt/files/*.json
			if de.Name() == "files" {
				sub := filepath.Join(inDir, "files")
				subEntries, _ := os.ReadDir(sub)
				for _, se := range subEntries {
					if !se.IsDir() && strings.HasSuffix(se.Name(), ".json") {
						files = append(files, filepath.Join(sub, se.Name()))
					}
				}
			}
			continue
		}
		if strings.HasSuffix(de.Name(), ".json") {
			files = append(files, filepath.Join(inDir, de.Name()))
		}
	}
	return files
}
