package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"jobtrack/internal/calendar"
	"jobtrack/internal/config"
	"jobtrack/internal/encryption"
	"jobtrack/internal/export"
	"jobtrack/internal/model"
	"jobtrack/internal/store"
	"jobtrack/internal/tracker"
)

// ErrNoEncryptor is returned by key operations when no encryption is configured.
var ErrNoEncryptor = errors.New("no encryption configured")

// JobTrackApp is the application layer between the CLI and tracker.Service.
// It constructs all dependencies from config and releases them on Close.
type JobTrackApp struct {
	cfg       *config.Config
	store     tracker.RecordStore
	exports   tracker.ExportDestination
	encryptor tracker.Encryptor
	service   *tracker.Service
	calendar  *calendar.Builder
	logger    tracker.Logger
	op        *Operation
	logFile   *os.File
}

// NewJobTrackApp creates a fully wired JobTrackApp from the given config.
// operation names the CLI command being run (e.g. "AddApplication", "Export")
// and is attached to every log line. The caller must call Close when done.
func NewJobTrackApp(ctx context.Context, cfg *config.Config, operation string) (*JobTrackApp, error) {
	op := NewOperation(operation, tracker.RealClock{}.Now())

	slogger, logFile, err := newLogger(cfg.LogDir, op.ID)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	logger := &slogAdapter{l: slogger}

	a, err := newJobTrackApp(ctx, cfg, op, logger)
	if err != nil {
		logFile.Close()
		return nil, err
	}
	a.logFile = logFile
	return a, nil
}

// newJobTrackApp wires the backends with an already constructed logger.
func newJobTrackApp(ctx context.Context, cfg *config.Config, op *Operation, logger tracker.Logger) (*JobTrackApp, error) {
	st, err := store.NewRecordStoreFromConfig(cfg.Store, logger)
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}

	dest, err := export.NewDestinationFromConfig(ctx, cfg.Export)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating export destination: %w", err)
	}

	// Key management works without encrypted exports; only a broken config
	// for encrypted exports is fatal.
	enc, err := encryption.NewEncryptorFromConfig(cfg.Encryption)
	if err != nil {
		if cfg.Export.Encrypt {
			st.Close()
			return nil, fmt.Errorf("creating encryptor: %w", err)
		}
		logger.Debug("encryption unavailable", "error", err)
		enc = nil
	}

	var exportEnc tracker.Encryptor
	if cfg.Export.Encrypt {
		exportEnc = enc
	}

	cal, err := calendar.NewBuilder(cfg.Calendar.CalendarID, cfg.Calendar.Timezone, tracker.UUIDGenerator{})
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating calendar builder: %w", err)
	}

	svc := tracker.NewService(st, dest, exportEnc, logger, tracker.RealClock{})
	logger.Debug("operation started", "operation", op.Command)

	return &JobTrackApp{
		cfg:       cfg,
		store:     st,
		exports:   dest,
		encryptor: enc,
		service:   svc,
		calendar:  cal,
		logger:    logger,
		op:        op,
	}, nil
}

// Service exposes the tracker service for read-only commands.
func (a *JobTrackApp) Service() *tracker.Service {
	return a.service
}

// Calendar returns the event payload builder configured for this app.
func (a *JobTrackApp) Calendar() *calendar.Builder {
	return a.calendar
}

// DashboardWidth returns the configured dashboard width; 0 means detect.
func (a *JobTrackApp) DashboardWidth() int {
	return a.cfg.Dashboard.Width
}

// AddApplication records a new application.
func (a *JobTrackApp) AddApplication(input tracker.NewApplication) (*model.Application, error) {
	app, err := a.service.AddApplication(input)
	if err != nil {
		return nil, a.op.Fail(err)
	}
	return app, nil
}

// UpdateApplication applies column updates to the application with the given ID.
func (a *JobTrackApp) UpdateApplication(id string, updates map[string]string) (*model.Application, error) {
	if len(updates) == 0 {
		return nil, a.op.Fail(fmt.Errorf("nothing to update for %s", id))
	}
	app, err := a.service.UpdateApplication(id, updates)
	if err != nil {
		return nil, a.op.Fail(err)
	}
	return app, nil
}

// Export writes a timestamped copy of the table to the export destination.
func (a *JobTrackApp) Export(ctx context.Context) (*tracker.ExportResult, error) {
	if a.cfg.Export.Encrypt && !a.encryptor.IsConfigured() {
		return nil, a.op.Fail(fmt.Errorf("encrypted exports enabled but no keys found: run 'jobtrack export keys' first"))
	}
	if err := a.exports.ValidateSetup(); err != nil {
		return nil, a.op.Fail(fmt.Errorf("export destination not ready: %w", err))
	}
	res, err := a.service.Export(ctx)
	if err != nil {
		return nil, a.op.Fail(err)
	}
	return res, nil
}

// SetupKeys generates the export key pair, protecting the private key with
// passphrase. It returns the public key when the encryptor exposes one.
func (a *JobTrackApp) SetupKeys(passphrase string) (string, error) {
	if a.encryptor == nil {
		return "", a.op.Fail(ErrNoEncryptor)
	}
	if err := a.encryptor.Setup(passphrase); err != nil {
		return "", a.op.Fail(fmt.Errorf("setting up keys: %w", err))
	}
	a.logger.Info("export keys created")

	if pk, ok := a.encryptor.(interface{ PublicKey() (string, error) }); ok {
		return pk.PublicKey()
	}
	return "", nil
}

// Decrypt unlocks the private key with passphrase and writes the plaintext of
// the encrypted export at path to w.
func (a *JobTrackApp) Decrypt(path, passphrase string, w io.Writer) error {
	if a.encryptor == nil {
		return a.op.Fail(ErrNoEncryptor)
	}
	dc, err := a.encryptor.Unlock(passphrase)
	if err != nil {
		return a.op.Fail(fmt.Errorf("unlocking private key: %w", err))
	}

	f, err := os.Open(path)
	if err != nil {
		return a.op.Fail(fmt.Errorf("opening export: %w", err))
	}
	defer f.Close()

	if err := dc.Decrypt(f, w); err != nil {
		return a.op.Fail(fmt.Errorf("decrypting %s: %w", path, err))
	}
	return nil
}

// Close records the outcome of the operation and closes all resources.
func (a *JobTrackApp) Close() error {
	var firstErr error

	if err := a.store.Close(); err != nil {
		firstErr = fmt.Errorf("closing store: %w", err)
	}

	if a.op.Failed() {
		a.logger.Info("operation failed", "operation", a.op.Command, "error", a.op.Err)
	} else {
		a.logger.Debug("operation finished", "operation", a.op.Command)
	}

	if a.logFile != nil {
		a.logFile.Close()
	}

	return firstErr
}

// Fail records err as the outcome of the current operation and returns it.
func (a *JobTrackApp) Fail(err error) error {
	return a.op.Fail(err)
}
