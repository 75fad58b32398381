package memory_test

import (
	"testing"

	"github.com/404-atomic/soulmate-flow/pkg/adapters/memory"
	"github.com/404-atomic/soulmate-flow/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunStateStoreContract(t, store)
}
