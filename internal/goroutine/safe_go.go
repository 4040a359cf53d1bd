package goroutine

import (
	"context"
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

// Go запускает фоновую задачу, паника логируется и не роняет процесс.
func Go(log logrus.FieldLogger, name string, fn func()) {
	go func() {
		defer recoverTo(log, name)
		fn()
	}()
}

// GoWithContext - то же, что Go, для задач, которые живут до отмены ctx.
func GoWithContext(ctx context.Context, log logrus.FieldLogger, name string, fn func(context.Context)) {
	go func() {
		defer recoverTo(log, name)
		fn(ctx)
	}()
}

func recoverTo(log logrus.FieldLogger, name string) {
	if r := recover(); r != nil {
		log.WithFields(logrus.Fields{
			"task":  name,
			"panic": r,
			"stack": string(debug.Stack()),
		}).Error("panic in background task")
	}
}
