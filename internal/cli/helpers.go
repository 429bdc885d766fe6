package cli

import (
	"fmt"
	"strconv"

	"github.com/smaamdev/esekolah/internal/domain"
	"github.com/smaamdev/esekolah/internal/store"
)

// requireLogin returns the identity or an error when nobody is logged in.
// Mutations on any module require at least the admin role.
func requireLogin(app *App) (*domain.Identity, error) {
	id := app.State.Identity()
	if id == nil {
		return nil, fmt.Errorf("sila log masuk dahulu (esekolah login)")
	}
	return id, nil
}

// requireAdminSistem guards the operations reserved for the system admin,
// currently only the module permission flags.
func requireAdminSistem(app *App) (*domain.Identity, error) {
	id, err := requireLogin(app)
	if err != nil {
		return nil, err
	}
	if id.Role != domain.RoleAdminSistem {
		return nil, fmt.Errorf("hanya adminsistem boleh mengubah kebenaran modul")
	}
	return id, nil
}

func parseRecordID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id tidak sah: %q", arg)
	}
	return id, nil
}

// loadCollection reads a module-owned collection from storage, falling
// back to seed when the key is absent or corrupt.
func loadCollection[T any](kv *store.Store, key string, seed []T) ([]T, error) {
	list := seed
	if _, err := kv.GetJSON(key, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// saveCollection writes a module-owned collection through to storage.
func saveCollection[T any](kv *store.Store, key string, list []T) error {
	return kv.Set(key, list)
}

// loadSlots reads the timetable grid-cell map.
func loadSlots(kv *store.Store) (map[string]string, error) {
	slots := make(map[string]string)
	if _, err := kv.GetJSON(store.KeyJadualSlots, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// slotKey builds the grid-cell key for a class, day and time.
func slotKey(class, day, timeSlot string) string {
	return class + "|" + day + "|" + timeSlot
}
