// Йоу, чат! Це точка входу FDMToolkit - утиліти для чанків 4D Miner.
// Вона читає чанк з файлу, виконує план редагування з TOML
// і записує результат назад, в тому ж форматі [id, span].

// Пакет main - це точка входу нашої програми, звідси все починається!
package main

import (
	"errors"
	"flag"
	"os"
	"runtime/debug"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"FDMToolkit/chunk"
	"FDMToolkit/edit"
	"FDMToolkit/export"
	"FDMToolkit/metrics"
	"FDMToolkit/world"
)

var (
	isDebug     = flag.Bool("debug", false, "Enable debug log output")
	inPath      = flag.String("in", "", "Chunk file to read; an all-air chunk is used when empty")
	outPath     = flag.String("out", "", "Chunk file to write")
	planPath    = flag.String("plan", "", "TOML edit plan to apply")
	lenient     = flag.Bool("lenient", false, "Clip oversized chunk data instead of failing")
	nbtPath     = flag.String("nbt", "", "Also write a gzip NBT dump of the result")
	metricsPath = flag.String("metrics", "", "Write Prometheus metrics to this textfile on exit")
)

func main() {
	flag.Parse()

	var logger *zap.Logger
	if *isDebug {
		logger = unwrap(zap.NewDevelopment())
	} else {
		logger = unwrap(zap.NewProduction())
	}
	defer func(logger *zap.Logger) {
		// Sync на stderr терміналу часто повертає EINVAL, це не помилка
		_ = logger.Sync()
	}(logger)
	printBuildInfo(logger)

	opts := options{
		InPath:      *inPath,
		OutPath:     *outPath,
		PlanPath:    *planPath,
		Lenient:     *lenient,
		NBTPath:     *nbtPath,
		MetricsPath: *metricsPath,
	}
	if err := run(logger, opts); err != nil {
		logger.Error("Run fail", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// options - налаштування одного запуску, заповнюються з флагів
type options struct {
	InPath      string // порожній шлях означає чанк з повітря
	OutPath     string
	PlanPath    string
	Lenient     bool
	NBTPath     string
	MetricsPath string
}

// run виконує одну обробку чанку від читання до запису
func run(logger *zap.Logger, opts options) error {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	if opts.MetricsPath != "" {
		defer func() {
			if err := prometheus.WriteToTextfile(opts.MetricsPath, reg); err != nil {
				logger.Error("Write metrics fail", zap.Error(err))
			}
		}()
	}

	var plan edit.Plan
	if opts.PlanPath != "" {
		var err error
		if plan, err = edit.Load(opts.PlanPath); err != nil {
			return err
		}
		logger.Debug("Loaded plan", zap.String("path", opts.PlanPath), zap.Int("steps", len(plan.Fill)))
	}

	var pos [3]int64
	w := world.New(logger, m)
	if opts.InPath != "" {
		data, err := os.ReadFile(opts.InPath)
		if err != nil {
			return err
		}
		err = w.Load(pos, data, opts.Lenient || plan.Lenient)
		// в lenient режимі обрізаний чанк вже лежить за pos, тож працюємо далі
		if _, loaded := w.Chunk(pos); err != nil && !(errors.Is(err, chunk.ErrCapacityExceeded) && loaded) {
			return err
		}
	} else {
		w.Put(pos, new(chunk.Chunk))
	}

	// спочатку перевіряємо весь план, щоб не лишити чанк наполовину заповненим
	if err := plan.Validate(); err != nil {
		return err
	}
	for i := range plan.Fill {
		if err := w.Fill(pos, plan.Fill[i].Params()); err != nil {
			return err
		}
	}

	data, err := w.Store(pos)
	if err != nil {
		return err
	}
	logger.Info("Chunk processed",
		zap.Int("groups", len(data)/2),
		zap.Int("bytes", len(data)),
		zap.Int("fill steps", len(plan.Fill)),
	)

	if opts.OutPath != "" {
		if err := os.WriteFile(opts.OutPath, data, 0o644); err != nil {
			return err
		}
	}
	if opts.NBTPath != "" {
		if err := writeNBT(opts.NBTPath, data); err != nil {
			return err
		}
	}
	return nil
}

// writeNBT пише NBT дамп вже закодованого чанку
func writeNBT(path string, data []byte) (errRet error) {
	c, err := chunk.Decode(data)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func(f *os.File) {
		err2 := f.Close()
		if errRet == nil && err2 != nil {
			errRet = err2
		}
	}(f)
	return export.WriteNBT(f, c)
}

// printBuildInfo виводить інформацію про збірку
// Це допомагає знайти проблеми з версіями бібліотек
func printBuildInfo(logger *zap.Logger) {
	binaryInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	settings := make(map[string]string)
	for _, v := range binaryInfo.Settings {
		settings[v.Key] = v.Value
	}
	logger.Debug("Build info", zap.Any("settings", settings))
}

// unwrap - хелпер функція яка спрощує обробку помилок
// Якщо є помилка - відразу панікуємо
func unwrap[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
