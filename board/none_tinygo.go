//go:build tinygo && !badger2040

package board

// Open has no board support on this target
func Open(cfg Config) (*Board, error) {
	return nil, ErrNoBoard
}
