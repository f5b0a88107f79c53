package directory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator は社員 ID の採番を提供します。
type IDGenerator interface {
	NewID() (string, error)
}

// uuidGenerator は UUIDv7 で採番します。時刻順に単調で、
// 連続呼び出しでも一意性が保証されます。
type uuidGenerator struct{}

func (uuidGenerator) NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("directory: generate id: %w", err)
	}
	return id.String(), nil
}

// Store は社員レコードの正本リストを所有し、全ての変更操作と
// 永続化を担います。挿入順を保持し、どの操作でも並べ替えません。
//
// 設計上ミューテータはプロセス内に一つだけですが、HTTP シェルが
// ゴルーチンを持ち込むため、全操作を単一ミューテックスで直列化します
// (FIFO、最後の書き込みが勝つ)。
type Store struct {
	mu        sync.Mutex
	repo      Repository
	idgen     IDGenerator
	loaded    bool
	employees []Employee
}

// NewStore は Store を生成します。idgen が nil の場合は UUIDv7 採番を使います。
func NewStore(repo Repository, idgen IDGenerator) *Store {
	if idgen == nil {
		idgen = uuidGenerator{}
	}
	return &Store{repo: repo, idgen: idgen}
}

// Load は保存済みリストから状態を復元します。保存済みデータが
// 存在しない場合は固定のシードデータを投入し、即座に永続化します。
// 二度目以降の呼び出しは何もしません。
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLoaded(ctx)
}

// Create は ID を除く全フィールドを受け取り、新しいレコードを
// リスト末尾に追加して永続化します。
func (s *Store) Create(ctx context.Context, in FormData) (*Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	id, err := s.idgen.NewID()
	if err != nil {
		return nil, err
	}

	emp := Employee{
		ID:           id,
		FullName:     in.FullName,
		Gender:       in.Gender,
		DateOfBirth:  in.DateOfBirth,
		ProfileImage: in.ProfileImage,
		State:        in.State,
		Active:       in.Active,
	}
	s.employees = append(s.employees, emp)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &emp, nil
}

// Update は ID を除く全フィールドを置き換えます。位置は保持されます。
// 該当 ID が存在しない場合はリストを変更せず ErrEmployeeNotFound を返します。
func (s *Store) Update(ctx context.Context, id string, in FormData) (*Employee, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrEmployeeNotFound
	}

	s.employees[idx] = Employee{
		ID:           id,
		FullName:     in.FullName,
		Gender:       in.Gender,
		DateOfBirth:  in.DateOfBirth,
		ProfileImage: in.ProfileImage,
		State:        in.State,
		Active:       in.Active,
	}

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	emp := s.employees[idx]
	return &emp, nil
}

// Delete は該当レコードを取り除き、永続化します。
// 該当 ID が存在しない場合は ErrEmployeeNotFound を返します。
func (s *Store) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrEmployeeNotFound
	}

	s.employees = append(s.employees[:idx], s.employees[idx+1:]...)
	return s.persist(ctx)
}

// ToggleActive は該当レコードの有効フラグを反転し、永続化します。
// 二度適用すると元の値に戻ります。
func (s *Store) ToggleActive(ctx context.Context, id string) (*Employee, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrEmployeeNotFound
	}

	s.employees[idx].Active = !s.employees[idx].Active

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	emp := s.employees[idx]
	return &emp, nil
}

// All はフィルタ適用前の全レコードのコピーを挿入順で返します。
func (s *Store) All(ctx context.Context) ([]Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	out := make([]Employee, len(s.employees))
	copy(out, s.employees)
	return out, nil
}

// Stats はフィルタ適用前の全レコードから集計値を返します。
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return Stats{}, err
	}
	return ComputeStats(s.employees), nil
}

func (s *Store) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	employees, ok, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: load employees: %v", ErrPersistence, err)
	}

	if !ok {
		employees = SeedEmployees()
		if err := s.repo.Save(ctx, employees); err != nil {
			return fmt.Errorf("%w: persist seed: %v", ErrPersistence, err)
		}
	}

	s.employees = employees
	s.loaded = true
	return nil
}

// persist は現在のリスト全体を保存します。失敗してもメモリ上の状態は
// 既に更新済みのため、呼び出し側はメモリのみで継続できます。
func (s *Store) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.employees); err != nil {
		return fmt.Errorf("%w: save employees: %v", ErrPersistence, err)
	}
	return nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.employees {
		if s.employees[i].ID == id {
			return i
		}
	}
	return -1
}
