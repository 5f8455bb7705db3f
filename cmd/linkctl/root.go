package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/darkseear/tinylink/internal/config"
	"github.com/darkseear/tinylink/internal/logger"
	"github.com/darkseear/tinylink/internal/models"
	"github.com/darkseear/tinylink/internal/registry"
	"github.com/darkseear/tinylink/internal/rpc"
	"github.com/darkseear/tinylink/internal/storage"
)

var errNotFound = errors.New("not found")

// linkAPI - операции команд, локально или через gRPC.
type linkAPI interface {
	Create(ctx context.Context, url, code string) (models.LinkView, error)
	Get(ctx context.Context, code string) (models.LinkView, error)
	List(ctx context.Context) ([]models.LinkView, error)
	Delete(ctx context.Context, code string) error
	Close() error
}

type localAPI struct {
	links *registry.Registry
	store storage.Storage
}

func (l *localAPI) Create(_ context.Context, url, code string) (models.LinkView, error) {
	return l.links.Create(url, code)
}

func (l *localAPI) Get(_ context.Context, code string) (models.LinkView, error) {
	link, ok := l.links.Get(code)
	if !ok {
		return models.LinkView{}, errNotFound
	}
	return link, nil
}

func (l *localAPI) List(_ context.Context) ([]models.LinkView, error) {
	return l.links.List(), nil
}

func (l *localAPI) Delete(_ context.Context, code string) error {
	deleted, err := l.links.Delete(code)
	if err != nil {
		return err
	}
	if !deleted {
		return errNotFound
	}
	return nil
}

func (l *localAPI) Close() error {
	return l.store.Close()
}

type options struct {
	file     string
	dsn      string
	remote   string
	logLevel string
}

// app - общее состояние команд после разбора флагов.
type app struct {
	opts options
	cfg  *config.Config
}

func (a *app) config() *config.Config {
	if a.cfg != nil {
		return a.cfg
	}
	cfg := config.NewFromArgs("linkctl", nil)
	if a.opts.file != "" {
		cfg.MemoryFile = a.opts.file
	}
	if a.opts.dsn != "" {
		cfg.DatabaseDSN = a.opts.dsn
	}
	if a.opts.remote != "" {
		cfg.GRPCAddress = a.opts.remote
	}
	a.cfg = cfg
	return cfg
}

func (a *app) openLocal() (*localAPI, error) {
	cfg := a.config()
	store, err := storage.New(cfg)
	if err != nil {
		return nil, err
	}
	links, err := registry.New(store, registry.Options{
		CodeLength:  cfg.CodeLength,
		MaxAttempts: cfg.CodeAttempts,
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return &localAPI{links: links, store: store}, nil
}

func (a *app) open() (linkAPI, error) {
	if a.opts.remote != "" {
		return rpc.Dial(a.opts.remote)
	}
	return a.openLocal()
}

// NewRootCmd собирает дерево команд linkctl.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "linkctl",
		Short:         "Manage TinyLink short links",
		Long:          `linkctl creates, lists, inspects and deletes short links, either on the local link storage or through a running server's gRPC API (--remote).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Initialize(a.opts.logLevel)
		},
	}

	root.PersistentFlags().StringVarP(&a.opts.file, "file", "f", "", "link storage file (default from FILE_STORAGE_PATH or data/tinylink.json)")
	root.PersistentFlags().StringVar(&a.opts.dsn, "dsn", "", "postgres dsn, overrides the file")
	root.PersistentFlags().StringVarP(&a.opts.remote, "remote", "r", "", "gRPC address of a running server")
	root.PersistentFlags().StringVar(&a.opts.logLevel, "log-level", "error", "log level")

	root.AddCommand(
		newCreateCmd(a),
		newListCmd(a),
		newGetCmd(a),
		newDeleteCmd(a),
		newDumpCmd(a),
	)
	return root
}
