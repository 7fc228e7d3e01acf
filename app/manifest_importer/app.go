package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	formatter "github.com/bluexlab/logrus-formatter"
	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/goccy/go-json"
	"github.com/gobuffalo/pop"
	"github.com/gobuffalo/pop/logging"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/config"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/importer"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/notify"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/registry"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/reference"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/session"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/storage"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/storage/memory"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/storage/postgres"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/util"
)

const appName string = "manifest-importer"

const (
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"
)

type ImportCmd struct {
	File     string            `arg:"" help:"Manifest file to import" type:"existingfile"`
	VesselID string            `long:"vessel-id" help:"Vessel carrying the cargo, required by some formats"`
	Voyage   string            `long:"voyage" help:"Voyage reference, overrides the one found in the file"`
	Format   string            `long:"format" help:"Skip detection and import with this format"`
	Set      map[string]string `long:"set" help:"Format specific options (key=value)"`
	DryRun   bool              `long:"dry-run" help:"Import into an in-memory store that is discarded afterwards"`
	Company  string            `long:"company" help:"Company importing the file, overrides the configured actor"`
	User     string            `long:"user" help:"User importing the file, overrides the configured actor"`
}

type CLI struct {
	Import ImportCmd `cmd:"" help:"Import a manifest file"`
	Detect struct {
		File string `arg:"" help:"File to inspect" type:"existingfile"`
	} `cmd:"" help:"Print the format a file would be imported as"`
	Formats struct {
	} `cmd:"" help:"List the supported formats"`
	Migrate struct {
		Path string `short:"p" long:"path" help:"Path to the migration files" type:"existingdir" default:"migrations"`
	} `cmd:"" help:"Migrate the database"`
	Config string `short:"c" long:"config" help:"Path to the configuration file" type:"path" default:"config.yaml"`
}

type Config struct {
	Database util.PostgresDatabaseConfig `yaml:"database"`
	Storage  string                      `yaml:"storage"`
	Actor    struct {
		CompanyID string `yaml:"company_id"`
		UserID    string `yaml:"user_id"`
	} `yaml:"actor"`
	ReferenceFile  string             `yaml:"reference_file"`
	DefaultCountry string             `yaml:"default_country"`
	Detection      registry.Config    `yaml:"detection"`
	Kafka          notify.KafkaConfig `yaml:"kafka"`
	OTLPEndpoint   string             `yaml:"otlp_endpoint"`
}

type App struct {
	stdout io.Writer
}

func (a *App) Run() {
	formatter.InitLogger()
	if a.stdout == nil {
		a.stdout = os.Stdout
	}

	var cli CLI
	ctx := kong.Parse(&cli, kong.UsageOnError())
	switch ctx.Command() {
	case "import <file>":
		os.Exit(a.runImport(cli))
	case "detect <file>":
		os.Exit(a.runDetect(cli))
	case "formats":
		os.Exit(a.runFormats(cli))
	case "migrate":
		a.runMigrate(cli)
	default:
	}
}

// loadConfig reads the configuration file. A missing file yields the defaults.
func loadConfig(path string) (Config, error) {
	var appConfig Config
	found, err := config.Load(path, &appConfig)
	if err != nil {
		return Config{}, err
	}
	if !found {
		logrus.Debugf("%s not found, using defaults", path)
	}
	if appConfig.Storage == "" {
		appConfig.Storage = StorageBackendPostgres
	}
	if appConfig.DefaultCountry == "" {
		appConfig.DefaultCountry = "PY"
	}
	return appConfig, nil
}

func loadCatalog(appConfig Config) (*reference.Catalog, error) {
	if appConfig.ReferenceFile == "" {
		return reference.Default(), nil
	}
	return reference.LoadFile(appConfig.ReferenceFile)
}

func (a *App) runImport(cli CLI) int {
	ctx := context.Background()
	cmd := cli.Import

	appConfig, err := loadConfig(cli.Config)
	if err != nil {
		logrus.Errorf("failed to load config: %v", err)
		return 128
	}

	if endpoint := appConfig.OTLPEndpoint; endpoint != "" {
		exporter, err := otlp_util.InitExporter(
			otlp_util.WithContext(ctx),
			otlp_util.WithEndPoint(endpoint),
			otlp_util.WithServiceName(appName),
			otlp_util.WithInSecure(),
			otlp_util.WithErrorHandler(func(err error) {
				logrus.Warnf("OTLP error: %v", err)
			}),
		)
		if err != nil {
			logrus.Errorf("failed to initialize OTLP exporter: %v", err)
			return 128
		}
		defer func() { _ = exporter.Shutdown(ctx) }()
	}

	actor, err := session.NewActor(
		lo.Ternary(cmd.Company != "", cmd.Company, appConfig.Actor.CompanyID),
		lo.Ternary(cmd.User != "", cmd.User, appConfig.Actor.UserID),
		appConfig.DefaultCountry,
	)
	if err != nil {
		logrus.Errorf("invalid actor: %v", err)
		return 128
	}

	catalog, err := loadCatalog(appConfig)
	if err != nil {
		logrus.Errorf("failed to load reference catalog: %v", err)
		return 128
	}

	store, closeStore, err := a.openStorage(appConfig, cmd, actor)
	if err != nil {
		logrus.Errorf("failed to open storage: %v", err)
		return 128
	}
	defer closeStore()

	options := []importer.OptionFunc{}
	if appConfig.Kafka.Enabled() && !cmd.DryRun {
		publisher, err := notify.NewKafkaPublisher(appConfig.Kafka)
		if err != nil {
			logrus.Errorf("failed to create publisher: %v", err)
			return 128
		}
		defer func() { _ = publisher.Close() }()
		options = append(options, importer.WithPublisher(publisher))
	}

	imp := importer.New(store, registry.Default(catalog, appConfig.Detection), catalog, options...)
	result := imp.Parse(ctx, actor, cmd.File, parser.Options{
		VesselID:        cmd.VesselID,
		VoyageReference: cmd.Voyage,
		Format:          cmd.Format,
		Extra:           cmd.Set,
	})
	if err := a.print(result); err != nil {
		logrus.Errorf("failed to print result: %v", err)
		return 128
	}
	if !result.Success {
		return 1
	}
	return 0
}

// openStorage opens the configured store. A dry run uses a fresh in-memory store seeded with the
// requested vessel so that formats requiring one can still be tried.
func (a *App) openStorage(appConfig Config, cmd ImportCmd, actor session.Actor) (storage.Storage, func(), error) {
	if cmd.DryRun || appConfig.Storage == StorageBackendMemory {
		options := []memory.OptionFunc{}
		if cmd.VesselID != "" {
			options = append(options, memory.WithVessels(model.Vessel{
				ID:        cmd.VesselID,
				CompanyID: actor.CompanyID,
				Name:      cmd.VesselID,
				Type:      model.VesselTypeBarge,
			}))
		}
		return memory.NewStorage(options...), func() {}, nil
	}
	if appConfig.Storage != StorageBackendPostgres {
		return nil, nil, fmt.Errorf("unknown storage %q", appConfig.Storage)
	}
	store, err := postgres.NewStorageWithConfig(appConfig.Database)
	if err != nil {
		return nil, nil, err
	}
	return store, store.Close, nil
}

func (a *App) runDetect(cli CLI) int {
	appConfig, err := loadConfig(cli.Config)
	if err != nil {
		logrus.Errorf("failed to load config: %v", err)
		return 128
	}
	catalog, err := loadCatalog(appConfig)
	if err != nil {
		logrus.Errorf("failed to load reference catalog: %v", err)
		return 128
	}

	p, err := registry.Default(catalog, appConfig.Detection).Select(cli.Detect.File)
	if err != nil {
		logrus.Errorf("%v", err)
		_ = a.print(map[string]any{"file": cli.Detect.File, "error": err.Error(), "error_kind": model.Classify(err)})
		return 1
	}
	if err := a.print(map[string]any{"file": cli.Detect.File, "format": p.Info()}); err != nil {
		return 128
	}
	return 0
}

type formatDescription struct {
	parser.FormatInfo
	DefaultConfig map[string]any `json:"default_config"`
}

func (a *App) runFormats(cli CLI) int {
	appConfig, err := loadConfig(cli.Config)
	if err != nil {
		logrus.Errorf("failed to load config: %v", err)
		return 128
	}
	catalog, err := loadCatalog(appConfig)
	if err != nil {
		logrus.Errorf("failed to load reference catalog: %v", err)
		return 128
	}

	reg := registry.Default(catalog, appConfig.Detection)
	formats := make([]formatDescription, 0, len(reg.Names()))
	for _, name := range reg.Names() {
		p, _ := reg.Lookup(name)
		formats = append(formats, formatDescription{FormatInfo: p.Info(), DefaultConfig: p.DefaultConfig()})
	}
	if err := a.print(formats); err != nil {
		return 128
	}
	return 0
}

func (a *App) runMigrate(cli CLI) {
	appConfig, err := loadConfig(cli.Config)
	if err != nil {
		logrus.Errorf("failed to load config: %v", err)
		os.Exit(128)
	}

	// set up the logger
	pop.SetLogger(func(lvl logging.Level, s string, args ...interface{}) {
		switch lvl {
		case logging.Debug:
			logrus.Debugf(s, args...)
		case logging.Info:
			logrus.Infof(s, args...)
		case logging.Warn:
			logrus.Warnf(s, args...)
		case logging.Error:
			logrus.Errorf(s, args...)
		case logging.SQL:
			// Do nothing
		}
	})

	cd := pop.ConnectionDetails{
		Dialect:  "postgres",
		Database: appConfig.Database.Database,
		Host:     appConfig.Database.Host,
		Port:     strconv.Itoa(appConfig.Database.Port),
		User:     appConfig.Database.User,
		Password: appConfig.Database.Password,
	}
	conn, err := pop.NewConnection(&cd)
	if err != nil {
		logrus.Errorf("failed to create connection to %s/%s: %v", appConfig.Database.Host, appConfig.Database.Database, err)
		os.Exit(128)
	}

	if err = conn.Dialect.CreateDB(); err != nil {
		logrus.Warnf("failed to create database: %v", err)
	}

	migrator, err := pop.NewFileMigrator(cli.Migrate.Path, conn)
	if err != nil {
		logrus.Errorf("failed to create migrator: %v", err)
		os.Exit(128)
	}
	// Remove SchemaPath to prevent migrator try to dump schema.
	migrator.SchemaPath = ""

	if err = migrator.Up(); err != nil {
		logrus.Errorf("failed to migrate: %v", err)
		os.Exit(1)
	}
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

