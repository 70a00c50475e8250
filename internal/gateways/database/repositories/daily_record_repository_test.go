package repositories

import (
	"context"
	"reflect"
	"sync"
	"testing"

	"github.com/jobpal/jobpal-bot/internal/gateways/database/models"
)

const testUser int64 = 101

// mustRecord takes a repository call's results directly:
// mustRecord(t)(repo.SetDone(...)).
func mustRecord(t *testing.T) func(*models.DailyRecord, error) *models.DailyRecord {
	t.Helper()
	return func(record *models.DailyRecord, err error) *models.DailyRecord {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record == nil {
			t.Fatal("expected a record, got nil")
		}
		return record
	}
}

func TestDailyRecordRepository_GetRecord_Absent(t *testing.T) {
	repo := NewDailyRecordRepository(newTestDB(t))

	record, err := repo.GetRecord(context.Background(), testUser, "2024-03-04")
	if err != nil || record != nil {
		t.Errorf("GetRecord() = %+v, %v, want nil, nil", record, err)
	}
}

func TestDailyRecordRepository_InsertRecordIfAbsent(t *testing.T) {
	repo := NewDailyRecordRepository(newTestDB(t))
	ctx := context.Background()

	first := mustRecord(t)(repo.InsertRecordIfAbsent(ctx, &models.DailyRecord{UserID: testUser, Day: "2024-03-04", Goal: 5}))
	second := mustRecord(t)(repo.InsertRecordIfAbsent(ctx, &models.DailyRecord{UserID: testUser, Day: "2024-03-04", Goal: 9}))

	if second.ID != first.ID || second.Goal != 5 || second.Done != 0 {
		t.Errorf("second insert = %+v, want the original row %+v", second, first)
	}
}

func TestDailyRecordRepository_IncrementDone(t *testing.T) {
	repo := NewDailyRecordRepository(newTestDB(t))
	ctx := context.Background()
	day := "2024-03-05"

	tests := []struct {
		name     string
		delta    int
		wantDone int
	}{
		{name: "creates the row", delta: 1, wantDone: 1},
		{name: "adds", delta: 2, wantDone: 3},
		{name: "subtracts", delta: -1, wantDone: 2},
		{name: "floors at zero", delta: -5, wantDone: 0},
		{name: "no upper bound", delta: 40, wantDone: 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := mustRecord(t)(repo.IncrementDone(ctx, testUser, day, 4, tt.delta))
			if record.Done != tt.wantDone || record.Goal != 4 {
				t.Errorf("IncrementDone(%d) = goal %d done %d, want goal 4 done %d", tt.delta, record.Goal, record.Done, tt.wantDone)
			}
		})
	}
}

func TestDailyRecordRepository_IncrementDone_NegativeOnMissingRow(t *testing.T) {
	repo := NewDailyRecordRepository(newTestDB(t))

	record := mustRecord(t)(repo.IncrementDone(context.Background(), testUser, "2024-03-05", 3, -1))
	if record.Done != 0 {
		t.Errorf("IncrementDone(-1) on missing row done = %d, want 0", record.Done)
	}
}

func TestDailyRecordRepository_IncrementDone_RoundTrip(t *testing.T) {
	repo := NewDailyRecordRepository(newTestDB(t))
	ctx := context.Background()
	day := "2024-03-05"

	mustRecord(t)(repo.SetDone(ctx, testUser, day, 5, 3))
	mustRecord(t)(repo.IncrementDone(ctx, testUser, day, 5, 1))
	record := mustRecord(t)(repo.IncrementDone(ctx, testUser, day, 5, -1))
	if record.Done != 3 {
		t.Errorf("+1 then -1 done = %d, want 3", record.Done)
	}
}

func TestDailyRecordRepository_ConcurrentIncrements(t *testing.T) {
	repo := NewDailyRecordRepository(newTestDB(t))
	ctx := context.Background()
	day := "2024-03-06"
	mustRecord(t)(repo.SetDone(ctx, testUser, day, 5, 3))

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.IncrementDone(ctx, testUser, day, 5, 1)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("IncrementDone() error = %v", err)
		}
	}

	record := mustRecord(t)(repo.GetRecord(ctx, testUser, day))
	if record.Done != 5 {
		t.Errorf("done after two concurrent increments = %d, want 5", record.Done)
	}
}

func TestDailyRecordRepository_SetDone_Idempotent(t *testing.T) {
	repo := NewDailyRecordRepository(newTestDB(t))
	ctx := context.Background()

	first := mustRecord(t)(repo.SetDone(ctx, testUser, "2024-03-06", 5, 7))
	second := mustRecord(t)(repo.SetDone(ctx, testUser, "2024-03-06", 5, 7))
	if first.Done != 7 || second.Done != 7 || first.ID != second.ID {
		t.Errorf("SetDone twice = %+v then %+v", first, second)
	}
}

func TestDailyRecordRepository_UpsertGoal_PreservesDone(t *testing.T) {
	repo := NewDailyRecordRepository(newTestDB(t))
	ctx := context.Background()

	mustRecord(t)(repo.SetDone(ctx, testUser, "2024-03-06", 5, 2))
	record := mustRecord(t)(repo.UpsertGoal(ctx, testUser, "2024-03-06", 12))
	if record.Goal != 12 || record.Done != 2 {
		t.Errorf("UpsertGoal() = goal %d done %d, want 12 and 2", record.Goal, record.Done)
	}
}

func TestDailyRecordRepository_LatestRecordBefore(t *testing.T) {
	repo := NewDailyRecordRepository(newTestDB(t))
	ctx := context.Background()

	mustRecord(t)(repo.UpsertGoal(ctx, testUser, "2024-03-01", 3))
	mustRecord(t)(repo.UpsertGoal(ctx, testUser, "2024-03-03", 6))
	mustRecord(t)(repo.UpsertGoal(ctx, testUser, "2024-03-05", 9))

	record := mustRecord(t)(repo.LatestRecordBefore(ctx, testUser, "2024-03-05"))
	if record.Day != "2024-03-03" || record.Goal != 6 {
		t.Errorf("LatestRecordBefore() = %+v, want 2024-03-03 goal 6", record)
	}

	none, err := repo.LatestRecordBefore(ctx, testUser, "2024-03-01")
	if err != nil || none != nil {
		t.Errorf("LatestRecordBefore(first day) = %+v, %v", none, err)
	}
}

func TestDailyRecordRepository_ListRecordsAndTotal(t *testing.T) {
	repo := NewDailyRecordRepository(newTestDB(t))
	ctx := context.Background()

	for day, done := range map[string]int{"2024-03-04": 2, "2024-03-05": 3, "2024-03-11": 4} {
		mustRecord(t)(repo.SetDone(ctx, testUser, day, 1, done))
	}
	mustRecord(t)(repo.SetDone(ctx, testUser+1, "2024-03-04", 1, 8))

	records, err := repo.ListRecords(ctx, testUser, "2024-03-04", "2024-03-10")
	if err != nil {
		t.Fatal(err)
	}
	var days []string
	for _, record := range records {
		days = append(days, record.Day)
	}
	if !reflect.DeepEqual(days, []string{"2024-03-04", "2024-03-05"}) {
		t.Errorf("ListRecords() days = %v", days)
	}

	total, err := repo.TotalDone(ctx, testUser)
	if err != nil || total != 9 {
		t.Errorf("TotalDone() = %d, %v, want 9", total, err)
	}
	total, err = repo.TotalDone(ctx, 999)
	if err != nil || total != 0 {
		t.Errorf("TotalDone(unknown) = %d, %v, want 0", total, err)
	}
}

func TestDailyRecordRepository_WeekdayGoals(t *testing.T) {
	repo := NewDailyRecordRepository(newTestDB(t))
	ctx := context.Background()

	if err := repo.UpsertWeekdayGoals(ctx, testUser, 10, []string{"Monday", "Wednesday"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.UpsertWeekdayGoals(ctx, testUser, 0, []string{"Wednesday"}); err != nil {
		t.Fatal(err)
	}

	monday, err := repo.GetWeekdayGoal(ctx, testUser, "Monday")
	if err != nil || monday == nil || monday.GoalCount != 10 {
		t.Errorf("GetWeekdayGoal(Monday) = %+v, %v", monday, err)
	}
	wednesday, err := repo.GetWeekdayGoal(ctx, testUser, "Wednesday")
	if err != nil || wednesday == nil || wednesday.GoalCount != 0 {
		t.Errorf("GetWeekdayGoal(Wednesday) = %+v, %v, want an explicit 0", wednesday, err)
	}
	friday, err := repo.GetWeekdayGoal(ctx, testUser, "Friday")
	if err != nil || friday != nil {
		t.Errorf("GetWeekdayGoal(Friday) = %+v, %v, want nil", friday, err)
	}

	goals, err := repo.ListWeekdayGoals(ctx, testUser)
	if err != nil || len(goals) != 2 {
		t.Errorf("ListWeekdayGoals() = %d rows, %v", len(goals), err)
	}
}

func TestDailyRecordRepository_WindowTotals(t *testing.T) {
	repo := NewDailyRecordRepository(newTestDB(t))
	ctx := context.Background()

	// Insertion order: alice, bob, carol.
	mustRecord(t)(repo.SetDone(ctx, 1, "2024-03-04", 1, 2))
	mustRecord(t)(repo.SetDone(ctx, 2, "2024-03-04", 1, 9))
	mustRecord(t)(repo.SetDone(ctx, 3, "2024-03-05", 1, 0))
	mustRecord(t)(repo.SetDone(ctx, 1, "2024-03-05", 1, 3))
	mustRecord(t)(repo.SetDone(ctx, 2, "2024-03-01", 1, 50))

	totals, err := repo.WindowTotals(ctx, "2024-03-04", "2024-03-10")
	if err != nil {
		t.Fatal(err)
	}
	got := make(map[int64]int)
	var order []int64
	for _, total := range totals {
		got[total.UserID] = total.Total
		order = append(order, total.UserID)
	}
	if !reflect.DeepEqual(got, map[int64]int{1: 5, 2: 9, 3: 0}) {
		t.Errorf("WindowTotals() = %v", got)
	}
	if !reflect.DeepEqual(order, []int64{1, 2, 3}) {
		t.Errorf("WindowTotals() order = %v, want first-record order", order)
	}
}
