package gui

import "alfredoptarigan/recruitment-assistant/internal/models"

const sessionQueueSize = 64

// sessionWorker owns the desktop session and runs queued work against it
// on a single goroutine, in submission order.
type sessionWorker struct {
	session *models.Session
	tasks   chan func(sess *models.Session)
	done    chan struct{}
}

func newSessionWorker(session *models.Session) *sessionWorker {
	w := &sessionWorker{
		session: session,
		tasks:   make(chan func(sess *models.Session), sessionQueueSize),
		done:    make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *sessionWorker) run() {
	defer close(w.done)
	for fn := range w.tasks {
		fn(w.session)
	}
}

// Submit queues fn behind every earlier submission.
func (w *sessionWorker) Submit(fn func(sess *models.Session)) {
	w.tasks <- fn
}

// Stop drains the queue and waits for the last task to finish.
func (w *sessionWorker) Stop() {
	close(w.tasks)
	<-w.done
}
