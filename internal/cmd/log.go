package cmd

import (
	"kvdb/internal/kvstore"

	"go.uber.org/zap"
)

func zapKey(key string) zap.Field {
	return zap.String("key", key)
}

func zapKind(v kvstore.Value) zap.Field {
	return zap.Stringer("kind", v.Kind())
}
