package loader

import (
	"context"
	"fmt"

	"github.com/vvka-141/memload/pkg/memload"
)

// queued is one statement in a worker's private queue along with its
// execution count.
type queued struct {
	text     string
	attempts int
}

// worker drains one chunk of statements on one exclusively owned connection.
// This is the sequential loading unit: the parallel loader runs one worker
// per chunk, and a single-worker load degenerates to plain sequential
// execution.
type worker struct {
	id          int
	runID       string
	conn        memload.Connection
	classifier  memload.ErrorClassifier
	maxAttempts int // -1 = unlimited
	logger      memload.Logger
}

// drain executes and commits every statement in stmts. Each worker owns a
// private deque: statements are popped from the front, and a statement that
// fails with a transient error is re-queued at the tail until its attempt
// budget runs out, after which it is abandoned with an error log. Fatal
// errors abort the drain immediately.
//
// The at-least-once-attempt policy means a load can complete successfully
// with some statements never applied; drain reports how many.
func (w *worker) drain(ctx context.Context, stmts []string) error {
	queue := make([]queued, len(stmts))
	for i, s := range stmts {
		queue[i] = queued{text: s}
	}

	executed := 0
	abandoned := 0
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		item := queue[0]
		queue = queue[1:]
		item.attempts++

		err := w.conn.Execute(ctx, item.text)
		if err == nil {
			err = w.conn.Commit(ctx)
		}
		if err != nil {
			if !w.classifier.IsTransient(err) {
				return fmt.Errorf("%w: %s: %v", memload.ErrExecutionFailed, preview(item.text), err)
			}
			if w.maxAttempts >= 0 && item.attempts >= w.maxAttempts {
				abandoned++
				w.logger.Error("run %s worker %d: abandoning statement after %d attempts: %s",
					w.runID, w.id, item.attempts, preview(item.text))
				continue
			}
			w.logger.Warn("run %s worker %d: re-queueing statement after transient error: %v",
				w.runID, w.id, err)
			queue = append(queue, item)
			continue
		}

		executed++
	}

	if abandoned > 0 {
		w.logger.Error("run %s worker %d: finished with %d statement(s) abandoned, %d applied",
			w.runID, w.id, abandoned, executed)
	} else {
		w.logger.Verbose("run %s worker %d: applied %d statement(s)", w.runID, w.id, executed)
	}
	return nil
}

// preview truncates a statement for log and error messages.
func preview(stmt string) string {
	if len(stmt) <= memload.MaxStatementPreviewLength {
		return stmt
	}
	return stmt[:memload.MaxStatementPreviewLength] + "..."
}
