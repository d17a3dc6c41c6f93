package audit

import (
	"context"
	"time"

	"github.com/benjomoments/studio-api/internal/model"
	"github.com/benjomoments/studio-api/pkg/logger"
	"github.com/benjomoments/studio-api/pkg/worker"
)

const writeTimeout = 5 * time.Second

type EntryWriter interface {
	Create(ctx context.Context, entry *model.AuditEntry) (*model.AuditEntry, error)
}

// Recorder persists audit entries off the request path. Record never blocks
// and never fails the caller: when the queue is full or a write errors, the
// entry is logged and dropped.
type Recorder struct {
	writer  EntryWriter
	manager *worker.WorkerManager
}

func NewRecorder(writer EntryWriter, queueSize, workers int) *Recorder {
	r := &Recorder{
		writer:  writer,
		manager: worker.NewWorkerManager(queueSize, workers, nil),
	}
	r.manager.SetWorker(r.persist)
	return r
}

// Start runs the writer pool and blocks until Stop is called.
func (r *Recorder) Start() error {
	return r.manager.Start()
}

func (r *Recorder) Stop() {
	r.manager.Exit()
}

// Record enqueues an entry for an action performed by principal. A full queue
// drops the entry rather than stalling the request.
func (r *Recorder) Record(principal *model.Principal, action, entityType string, entityID int64) {
	entry := &model.AuditEntry{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}
	if principal != nil {
		entry.UserEmail = principal.Email
	}

	select {
	case r.manager.JobEvents() <- entry:
	default:
		logger.Warn("audit queue full, dropping entry", "action", action, "entity_type", entityType)
	}
}

func (r *Recorder) persist(workerIndex int, job interface{}) {
	entry, ok := job.(*model.AuditEntry)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if _, err := r.writer.Create(ctx, entry); err != nil {
		logger.Error("audit write failed", "action", entry.Action, "error", err)
	}
}
