package store

// DeleteFood removes a catalog row directly; the store itself never deletes.
func DeleteFood(s *Store, id int64) error {
	_, err := s.db.Exec(`DELETE FROM foods WHERE id = ?`, id)
	return err
}

// DetachForeignKeys disables enforcement so tests can write rows the
// schema would otherwise refuse.
func DetachForeignKeys(s *Store) error {
	_, err := s.db.Exec(`PRAGMA foreign_keys = OFF`)
	return err
}

func ExecRaw(s *Store, query string, args ...any) error {
	_, err := s.db.Exec(query, args...)
	return err
}
