package locker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// Store persists the configuration and lock records. UpdateLock is a
// compare-and-swap: it fails with ErrStaleRecord when the stored record no
// longer carries the expected status and liquidity, so a stale writer never
// clobbers a concurrent unlock.
type Store interface {
	Config() (*LockConfig, error)
	CreateConfig(cfg *LockConfig) error

	Lock(owner, positionNftMint solana.PublicKey) (*LockRecord, error)
	CreateLock(record *LockRecord) error
	UpdateLock(record *LockRecord, prevStatus LockStatus, prevLiquidity binary.Uint128) error
	LocksByOwner(owner solana.PublicKey) ([]*LockRecord, error)
}

func lockKey(owner, positionNftMint solana.PublicKey) string {
	return owner.String() + "/" + positionNftMint.String()
}

func sameLiquidity(a, b binary.Uint128) bool {
	return a.BigInt().Cmp(b.BigInt()) == 0
}

// MemoryStore is an in-process Store for tests and embedded use.
type MemoryStore struct {
	mu     sync.Mutex
	config *LockConfig
	locks  map[string]*LockRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{locks: map[string]*LockRecord{}}
}

func (s *MemoryStore) Config() (*LockConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.config == nil {
		return nil, ErrConfigNotFound
	}
	cfg := *s.config
	return &cfg, nil
}

func (s *MemoryStore) CreateConfig(cfg *LockConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.config != nil {
		return ErrConfigExists
	}
	cp := *cfg
	s.config = &cp
	return nil
}

func (s *MemoryStore) Lock(owner, positionNftMint solana.PublicKey) (*LockRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.locks[lockKey(owner, positionNftMint)]
	if !ok {
		return nil, ErrLockNotFound
	}
	return record.clone(), nil
}

func (s *MemoryStore) CreateLock(record *LockRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := lockKey(record.Owner, record.PositionNftMint)
	if _, ok := s.locks[key]; ok {
		return ErrLockExists
	}
	s.locks[key] = record.clone()
	return nil
}

func (s *MemoryStore) UpdateLock(record *LockRecord, prevStatus LockStatus, prevLiquidity binary.Uint128) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := lockKey(record.Owner, record.PositionNftMint)
	current, ok := s.locks[key]
	if !ok {
		return ErrLockNotFound
	}
	if current.Status != prevStatus || !sameLiquidity(current.LiquidityLocked, prevLiquidity) {
		return ErrStaleRecord
	}
	s.locks[key] = record.clone()
	return nil
}

func (s *MemoryStore) LocksByOwner(owner solana.PublicKey) ([]*LockRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*LockRecord
	for _, record := range s.locks {
		if record.Owner.Equals(owner) {
			out = append(out, record.clone())
		}
	}
	return out, nil
}

// FileStore persists records as discriminated borsh files under a
// directory, one file per lock record plus config.bin. Writes go through a
// temp file and rename.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) configPath() string {
	return filepath.Join(s.dir, "config.bin")
}

func (s *FileStore) lockPath(owner, positionNftMint solana.PublicKey) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_%s.bin", owner.String(), positionNftMint.String()))
}

func (s *FileStore) writeFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *FileStore) Config() (*LockConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.configPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}
	return DecodeLockConfig(data)
}

func (s *FileStore) CreateConfig(cfg *LockConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := os.Stat(s.configPath()); err == nil {
		return ErrConfigExists
	}
	data, err := EncodeLockConfig(cfg)
	if err != nil {
		return err
	}
	return s.writeFile(s.configPath(), data)
}

func (s *FileStore) Lock(owner, positionNftMint solana.PublicKey) (*LockRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLock(s.lockPath(owner, positionNftMint))
}

func (s *FileStore) readLock(path string) (*LockRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrLockNotFound
		}
		return nil, err
	}
	return DecodeLockRecord(data)
}

func (s *FileStore) CreateLock(record *LockRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	path := s.lockPath(record.Owner, record.PositionNftMint)
	if _, err := os.Stat(path); err == nil {
		return ErrLockExists
	}
	data, err := EncodeLockRecord(record)
	if err != nil {
		return err
	}
	return s.writeFile(path, data)
}

func (s *FileStore) UpdateLock(record *LockRecord, prevStatus LockStatus, prevLiquidity binary.Uint128) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	path := s.lockPath(record.Owner, record.PositionNftMint)
	current, err := s.readLock(path)
	if err != nil {
		return err
	}
	if current.Status != prevStatus || !sameLiquidity(current.LiquidityLocked, prevLiquidity) {
		return ErrStaleRecord
	}
	data, err := EncodeLockRecord(record)
	if err != nil {
		return err
	}
	return s.writeFile(path, data)
}

func (s *FileStore) LocksByOwner(owner solana.PublicKey) ([]*LockRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	prefix := owner.String() + "_"
	var out []*LockRecord
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".bin") {
			continue
		}
		record, err := s.readLock(filepath.Join(s.dir, name))
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}
