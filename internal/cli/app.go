// Package cli implements the trafficpath command tree.
//
// Every command loads the network named by the configuration (or --data),
// acts on it and writes human readable output to the command's out stream.
// Logs go to the zap logger built from the configuration.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/trafficpath/core"
	"github.com/katalvlaran/trafficpath/internal/config"
	"github.com/katalvlaran/trafficpath/store"
	"github.com/katalvlaran/trafficpath/store/graphdb"
)

// ErrUnknownJunction indicates a junction reference matching no id or name.
var ErrUnknownJunction = errors.New("unknown junction")

// stdoutPath selects the command's out stream instead of a file.
const stdoutPath = "-"

// app carries the state shared by all commands of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	cfg    config.Config
	logger *zap.Logger

	// newClient opens the graph database; tests substitute a memory client.
	newClient func(ctx context.Context, opts graphdb.Options) (graphdb.Client, error)

	flags globalFlags
}

type globalFlags struct {
	envFiles  []string
	dataFile  string
	capacity  int
	logLevel  string
	logFormat string
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:       out,
		errOut:    errOut,
		logger:    zap.NewNop(),
		newClient: graphdb.NewNeo4jClient,
	}
}

func (a *app) loadOptions() []store.LoadOption {
	return []store.LoadOption{
		store.WithLogger(a.logger),
		store.WithCapacity(a.cfg.Network.Capacity),
		store.WithGraphOptions(core.WithNonNegativeWeights()),
	}
}

// loadNetwork reads the configured data file. With allowMissing a missing
// file yields an empty network, the starting point for editing commands.
func (a *app) loadNetwork(allowMissing bool) (*core.Graph, error) {
	path := a.cfg.Network.DataFile
	g, err := store.LoadFile(path, a.loadOptions()...)
	if err != nil {
		if allowMissing && errors.Is(err, store.ErrNotFound) {
			a.logger.Info("network file not found, starting fresh", zap.String("path", path))
			return core.NewBuilder(core.WithCapacity(a.cfg.Network.Capacity)).Build(), nil
		}
		return nil, err
	}
	a.logger.Debug("network loaded",
		zap.String("path", path),
		zap.Stringer("snapshot", g.ID()),
		zap.Int("junctions", g.VertexCount()),
		zap.Int("roads", g.RoadCount()),
	)

	return g, nil
}

func (a *app) saveNetwork(path string, g *core.Graph) error {
	if err := store.SaveFile(path, g); err != nil {
		return err
	}
	a.logger.Info("network saved",
		zap.String("path", path),
		zap.Int("junctions", g.VertexCount()),
		zap.Int("roads", g.RoadCount()),
	)

	return nil
}

// withOutput runs write against the out stream for "-" and against a newly
// created file otherwise.
func (a *app) withOutput(path string, write func(io.Writer) error) error {
	if path == stdoutPath {
		return write(a.out)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func (a *app) repository(ctx context.Context) (*store.Repository, func(), error) {
	client, err := a.newClient(ctx, graphdb.Options{
		URI:            a.cfg.Graph.URI,
		Database:       a.cfg.Graph.Database,
		Username:       a.cfg.Graph.Username,
		Password:       a.cfg.Graph.Password,
		MaxConnections: a.cfg.Graph.MaxConnections,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect graph database: %w", err)
	}
	closeFn := func() {
		if err := client.Close(context.Background()); err != nil {
			a.logger.Warn("closing graph client failed", zap.Error(err))
		}
	}

	return store.NewRepository(client, a.loadOptions()...), closeFn, nil
}

// resolveJunction accepts a junction id or name; exact names win over
// case-insensitive ones.
func resolveJunction(g *core.Graph, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.Atoi(ref); err == nil {
		if g.Valid(id) {
			return id, nil
		}
		return -1, fmt.Errorf("%w: id %d outside [0,%d)", ErrUnknownJunction, id, g.VertexCount())
	}

	folded := -1
	for _, v := range g.Vertices() {
		if v.Name == ref {
			return v.ID, nil
		}
		if folded < 0 && strings.EqualFold(v.Name, ref) {
			folded = v.ID
		}
	}
	if folded >= 0 {
		return folded, nil
	}

	return -1, fmt.Errorf("%w: %q", ErrUnknownJunction, ref)
}
