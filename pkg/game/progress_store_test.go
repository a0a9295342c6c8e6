package game

import "testing"

// TestParseStoredInt 测试存储值解析
func TestParseStoredInt(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"plain", "42", 42},
		{"whitespace", " 17\n", 17},
		{"empty", "", 0},
		{"garbage", "abc", 0},
		{"float", "3.5", 0},
		{"negative", "-5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseStoredInt(tt.raw); got != tt.want {
				t.Errorf("parseStoredInt(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

// TestGdataProgressStoreNil 测试降级模式
func TestGdataProgressStoreNil(t *testing.T) {
	store := NewGdataProgressStore(nil)
	store.Save(10, 20)

	best, balance := store.Load()
	if best != 0 || balance != 0 {
		t.Errorf("Load() = (%d, %d), want (0, 0)", best, balance)
	}
}

// TestGdataProgressStoreRoundTrip 测试保存后可以读回
func TestGdataProgressStoreRoundTrip(t *testing.T) {
	manager := openTestGdata(t, "test_cw_progress")

	store := NewGdataProgressStore(manager)
	best, balance := store.Load()
	if best != 0 || balance != 0 {
		t.Fatalf("fresh store Load() = (%d, %d), want (0, 0)", best, balance)
	}

	store.Save(33, 12)

	best, balance = NewGdataProgressStore(manager).Load()
	if best != 33 || balance != 12 {
		t.Errorf("Load() = (%d, %d), want (33, 12)", best, balance)
	}
}

// TestGdataProgressStoreCorrupt 测试损坏的值读为 0
func TestGdataProgressStoreCorrupt(t *testing.T) {
	manager := openTestGdata(t, "test_cw_progress_corrupt")

	if err := manager.SaveObjectProp(progressObject, bestScoreProperty, []byte("not-a-number")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}
	if err := manager.SaveObjectProp(progressObject, balanceProperty, []byte("25")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	best, balance := NewGdataProgressStore(manager).Load()
	if best != 0 {
		t.Errorf("corrupt bestScore should load as 0, got %d", best)
	}
	if balance != 25 {
		t.Errorf("balance: got %d, want 25", balance)
	}
}

// TestMemoryProgressStore 测试内存存储
func TestMemoryProgressStore(t *testing.T) {
	store := NewMemoryProgressStore(5, 7)

	best, balance := store.Load()
	if best != 5 || balance != 7 {
		t.Errorf("Load() = (%d, %d), want (5, 7)", best, balance)
	}

	store.Save(9, 1)
	best, balance = store.Load()
	if best != 9 || balance != 1 {
		t.Errorf("Load() after Save = (%d, %d), want (9, 1)", best, balance)
	}
	if store.SaveCount() != 1 {
		t.Errorf("SaveCount() = %d, want 1", store.SaveCount())
	}
}
