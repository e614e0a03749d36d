// internal/app/system/txn/txn.go
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Run executes fn inside a MongoDB multi-document transaction.
//
// The driver's WithTransaction retries on transient transaction errors and
// commit conflicts, so optimistic write conflicts between concurrent
// transactions are handled here, not by callers. fn must re-read any
// document whose state it depends on using the context it is given, so
// those reads are part of the transaction's snapshot.
//
// Standalone mongod instances (common in dev) do not support transactions.
// When the server rejects the session or transaction outright, Run logs a
// warning and executes fn once without a transaction. fn should therefore
// use conditional updates where an invariant must hold even on that path.
func Run(ctx context.Context, db *mongo.Database, log *zap.Logger, fn func(ctx context.Context) error) error {
	sess, err := db.Client().StartSession()
	if err != nil {
		if IsNotSupported(err) {
			logNoTxn(log, err)
			return fn(ctx)
		}
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	if err != nil && IsNotSupported(err) {
		logNoTxn(log, err)
		return fn(ctx)
	}
	return err
}

func logNoTxn(log *zap.Logger, err error) {
	if log != nil {
		log.Warn("transactions not supported by server, running without transaction", zap.Error(err))
	}
}

// IsNotSupported reports whether err indicates the server cannot run
// multi-document transactions (standalone deployment, old server, or a
// command issued outside a supported context).
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) {
		switch ce.Code {
		case 20, 51, 263: // IllegalOperation, OperationFailed variants seen on standalones
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "illegal operation"):
		return true
	case strings.Contains(msg, "transaction") && strings.Contains(msg, "replica set"):
		return true
	case strings.Contains(msg, "transaction") && strings.Contains(msg, "session"):
		return true
	case strings.Contains(msg, "session") && strings.Contains(msg, "not supported"):
		return true
	}
	return false
}
