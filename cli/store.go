package cli

import (
	"github.com/frankonly/chainkit/log"
	"github.com/frankonly/chainkit/storage"
)

var chainStore *storage.ChainStore

// Store opens or returns the chain store at the configured directory
func Store() *storage.ChainStore {
	if chainStore == nil {
		logger := log.New()

		db, err := storage.NewLevelDB(dbDir)
		if err != nil {
			logger.Fatalf("failed to open db at %s: %v", dbDir, err)
		}

		store, err := storage.OpenChainStore(db)
		if err != nil {
			logger.Fatalf("failed to load chain from %s: %v", dbDir, err)
		}

		chainStore = store
	}

	return chainStore
}
