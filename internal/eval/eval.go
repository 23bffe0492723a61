// Package eval implements the robustness-evaluation pipeline: walking
// a dataset tree, sweeping a payload x parameter-grid per method,
// applying channel modifications, and writing one CSV per input file
// under output/<dataset>/<category>/<file>.csv.
package eval

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/linuxmatters/audiosteg/internal/bits"
	"github.com/linuxmatters/audiosteg/internal/mains"
	sig "github.com/linuxmatters/audiosteg/internal/signal"
	"github.com/linuxmatters/audiosteg/internal/stats"
	"github.com/linuxmatters/audiosteg/internal/stego"
	"github.com/linuxmatters/audiosteg/internal/wavio"
)

// EvalRow is one evaluated (file, method, payload, params,
// modification) configuration, the row grain written to the output
// CSVs.
type EvalRow struct {
	Dataset      string
	Category     string
	File         string
	Method       stego.MethodTag
	ParamsJSON   string
	SecretBits   int
	Modification string
	MainsHz      int
	stats.StatBundle
	EncodeMillis float64
	DecodeMillis float64
}

// Config parameterizes one evaluation run.
type Config struct {
	DatasetRoot string
	OutputRoot  string
	Methods     []stego.MethodTag // empty means AllTags
	Extended    bool
	Workers     int // 0 means runtime.NumCPU()
	Log         func(format string, args ...any)
}

// Result summarizes a completed run for the CLI's closing banner.
type Result struct {
	Files int
	Rows  int
}

// Run walks Config.DatasetRoot and evaluates every (file, method)
// pair through a bounded worker pool, one CSV written per input file.
func Run(ctx context.Context, cfg Config) (Result, error) {
	methods := cfg.Methods
	if len(methods) == 0 {
		methods = stego.AllTags
	}
	logf := cfg.Log
	if logf == nil {
		logf = func(string, ...any) {}
	}

	files, err := walkDataset(cfg.DatasetRoot)
	if err != nil {
		return Result{}, fmt.Errorf("walk dataset: %w", err)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	mainsHz := mains.Frequency()

	var rowCount int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, f := range files {
		f := f
		g.Go(func() error {
			n, err := evaluateFile(gctx, cfg, f, methods, mainsHz, logf)
			atomic.AddInt64(&rowCount, int64(n))
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Result{Files: len(files), Rows: int(rowCount)}, err
	}
	return Result{Files: len(files), Rows: int(rowCount)}, nil
}

// datasetFile identifies one cover WAV's position in the dataset
// tree, relative to Config.DatasetRoot.
type datasetFile struct {
	Dataset  string
	Category string
	Name     string
	Path     string
}

// walkDataset walks root/dataset/category/file, ignoring dot
// directories and accepting only case-insensitive .wav files.
func walkDataset(root string) ([]datasetFile, error) {
	var out []datasetFile
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() != "." && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".wav") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		if len(parts) < 3 {
			return nil // not dataset/category/file
		}
		out = append(out, datasetFile{
			Dataset:  parts[0],
			Category: parts[1],
			Name:     parts[len(parts)-1],
			Path:     path,
		})
		return nil
	})
	return out, err
}

// evaluateFile runs every method x payload x params x modification
// combination for one cover file and writes its CSV.
func evaluateFile(ctx context.Context, cfg Config, f datasetFile, methods []stego.MethodTag, mainsHz int, logf func(string, ...any)) (int, error) {
	cover, err := wavio.Read(f.Path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", f.Path, err)
	}

	mods := buildModifications(cfg.Extended)
	var rows []EvalRow

	for _, tag := range methods {
		method, err := stego.Lookup(tag)
		if err != nil {
			return 0, err
		}
		for _, payload := range payloads {
			bb := bits.FromText(payload)
			for _, opts := range paramGrid(tag, cfg.Extended) {
				opts["l"] = bb.Len()
				rows = append(rows, evaluateOne(ctx, f, method, cover, bb.Bits, opts, mods, mainsHz, logf)...)
			}
		}
	}

	outDir := filepath.Join(cfg.OutputRoot, f.Dataset, f.Category)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("create output dir %s: %w", outDir, err)
	}
	outPath := filepath.Join(outDir, f.Name+".csv")
	if err := writeCSV(outPath, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// evaluateOne runs one (method, payload, params) combination across
// every modification, encoding once and decoding once per
// modification.
func evaluateOne(ctx context.Context, f datasetFile, method stego.Method, cover sig.Signal, payload []int, opts stego.SideParams, mods []Modification, mainsHz int, logf func(string, ...any)) []EvalRow {
	paramsJSON := paramsToJSON(opts)

	encodeStart := time.Now()
	stegoSig, side, err := method.Encode(cover, payload, opts)
	encodeMillis := float64(time.Since(encodeStart).Microseconds()) / 1000

	if err != nil {
		if errors.Is(err, stego.ErrSecretTooLarge) {
			return []EvalRow{{
				Dataset: f.Dataset, Category: f.Category, File: f.Name,
				Method: method.Tag(), ParamsJSON: paramsJSON, SecretBits: len(payload),
				Modification: "n/a", MainsHz: mainsHz,
				StatBundle:   naNStatBundle(len(payload)),
				EncodeMillis: math.Inf(1), DecodeMillis: math.Inf(1),
			}}
		}
		logf("eval: %s %s encode failed: %v", f.Path, method.Tag(), err)
		return nil
	}

	var rows []EvalRow
	for _, mod := range mods {
		modSig, ok, err := mod.Apply(ctx, stegoSig)
		if err != nil {
			logf("eval: %s %s modification %s failed: %v", f.Path, method.Tag(), mod.Name, err)
			continue
		}
		if !ok {
			logf("eval: %s modification %s skipped (external tool unavailable)", f.Path, mod.Name)
			continue
		}

		decodeStart := time.Now()
		decoded, err := method.Decode(modSig, side)
		decodeMillis := float64(time.Since(decodeStart).Microseconds()) / 1000
		if err != nil {
			logf("eval: %s %s decode after %s failed: %v", f.Path, method.Tag(), mod.Name, err)
			continue
		}

		sb := stats.Compute(cover.Samples, modSig.Samples, payload, decoded)
		rows = append(rows, EvalRow{
			Dataset: f.Dataset, Category: f.Category, File: f.Name,
			Method: method.Tag(), ParamsJSON: paramsJSON, SecretBits: len(payload),
			Modification: mod.Name, MainsHz: mainsHz,
			StatBundle:   sb,
			EncodeMillis: encodeMillis, DecodeMillis: decodeMillis,
		})
	}
	return rows
}

func naNStatBundle(secretLen int) stats.StatBundle {
	return stats.StatBundle{
		SNRdB: math.NaN(), PSNRdB: math.NaN(), MSE: math.NaN(), RMSD: math.NaN(),
		BERPercent: math.NaN(), SecretLen: secretLen,
	}
}

// paramsToJSON renders a SideParams map deterministically (sorted
// keys) without pulling in encoding/json, since values here are
// always scalars from a map we control.
func paramsToJSON(p stego.SideParams) string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sortStrings(keys)
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(k)
		b.WriteString(`":`)
		b.WriteString(scalarJSON(p[k]))
	}
	b.WriteByte('}')
	return b.String()
}

func scalarJSON(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprintf("%q", fmt.Sprint(x))
	}
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// writeCSV serialises rows in stable per-row order to path.
func writeCSV(path string, rows []EvalRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"dataset", "category", "file", "method", "params", "secret_bits",
		"modification", "mains_hz", "snr_db", "psnr_db", "mse", "rmsd",
		"ber_percent", "source_len", "secret_len", "stego_len",
		"encode_ms", "decode_ms",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Dataset, r.Category, r.File, string(r.Method), r.ParamsJSON,
			strconv.Itoa(r.SecretBits), r.Modification, strconv.Itoa(r.MainsHz),
			formatFloat(r.SNRdB), formatFloat(r.PSNRdB), formatFloat(r.MSE), formatFloat(r.RMSD),
			formatFloat(r.BERPercent), strconv.Itoa(r.SourceLen), strconv.Itoa(r.SecretLen), strconv.Itoa(r.StegoLen),
			formatFloat(r.EncodeMillis), formatFloat(r.DecodeMillis),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	if err := w.Error(); err != nil {
		return err
	}
	return nil
}

func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	default:
		return strconv.FormatFloat(v, 'f', 6, 64)
	}
}
