package listing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/academyhall/booking-gateway/internal/domain"
)

func makeBookings(n int) []*domain.Booking {
	statuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusApproved,
		domain.StatusRejected,
		domain.StatusUpcoming,
		domain.StatusCompleted,
		domain.StatusCancelled,
	}
	out := make([]*domain.Booking, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &domain.Booking{
			ID:         fmt.Sprintf("HB-%03d", i),
			AcademyID:  fmt.Sprintf("ACAD-%d", i%3),
			EventTitle: fmt.Sprintf("Training %d", i),
			Organizer:  fmt.Sprintf("Organizer %d", i),
			Status:     statuses[i%len(statuses)],
			Sessions: []domain.BookingSession{
				{HallID: fmt.Sprintf("HALL-%d", i%4)},
			},
		})
	}
	return out
}

func TestPaginate_PageSlicing(t *testing.T) {
	source := makeBookings(23)

	page1 := Paginate(source, 1, 10, Filters{})
	require.Len(t, page1.Items, 10)
	require.Equal(t, 23, page1.TotalCount)
	require.Equal(t, "HB-000", page1.Items[0].ID)

	page3 := Paginate(source, 3, 10, Filters{})
	require.Len(t, page3.Items, 3)
	require.Equal(t, 23, page3.TotalCount)
	require.Equal(t, "HB-020", page3.Items[0].ID)

	require.Equal(t, 3, TotalPages(23, 10))
}

func TestPaginate_PageBeyondEnd(t *testing.T) {
	source := makeBookings(23)

	result := Paginate(source, 5, 10, Filters{})
	require.Empty(t, result.Items)
	require.NotNil(t, result.Items)
	require.Equal(t, 23, result.TotalCount)
}

func TestPaginate_PageClamp(t *testing.T) {
	source := makeBookings(5)

	result := Paginate(source, 0, 10, Filters{})
	require.Len(t, result.Items, 5)
	require.Equal(t, "HB-000", result.Items[0].ID)
}

func TestPaginate_PreservesInsertionOrder(t *testing.T) {
	source := makeBookings(23)

	result := Paginate(source, 1, 23, Filters{})
	for i, b := range result.Items {
		require.Equal(t, fmt.Sprintf("HB-%03d", i), b.ID)
	}
}

func TestMatches_StatusBuckets(t *testing.T) {
	upcoming := &domain.Booking{Status: domain.StatusUpcoming}
	completed := &domain.Booking{Status: domain.StatusCompleted}
	cancelled := &domain.Booking{Status: domain.StatusCancelled}
	pending := &domain.Booking{Status: domain.StatusPending}

	// upcoming и completed входят в бакет approved
	require.True(t, Matches(upcoming, Filters{Status: "approved"}))
	require.True(t, Matches(completed, Filters{Status: "approved"}))
	require.False(t, Matches(pending, Filters{Status: "approved"}))

	// cancelled входит в бакет rejected
	require.True(t, Matches(cancelled, Filters{Status: "rejected"}))
	require.False(t, Matches(cancelled, Filters{Status: "approved"}))

	// сравнение без учета регистра
	require.True(t, Matches(upcoming, Filters{Status: "Approved"}))
	require.True(t, Matches(pending, Filters{Status: "PENDING"}))
}

func TestMatches_AllSentinel(t *testing.T) {
	b := &domain.Booking{Status: domain.StatusPending, AcademyID: "ACAD-1"}

	require.True(t, Matches(b, Filters{Status: domain.FilterAll, Academy: domain.FilterAll, Hall: domain.FilterAll}))
	require.True(t, Matches(b, Filters{}))
}

func TestMatches_AcademyAndHall(t *testing.T) {
	b := &domain.Booking{
		AcademyID: "ACAD-1",
		Status:    domain.StatusApproved,
		Sessions: []domain.BookingSession{
			{HallID: "HALL-2"},
			{HallID: "HALL-7"},
		},
	}

	require.True(t, Matches(b, Filters{Academy: "ACAD-1"}))
	require.False(t, Matches(b, Filters{Academy: "ACAD-2"}))

	// зал совпадает, если любая строка плана использует его
	require.True(t, Matches(b, Filters{Hall: "HALL-7"}))
	require.False(t, Matches(b, Filters{Hall: "HALL-3"}))
}

func TestMatches_Search(t *testing.T) {
	b := &domain.Booking{
		ID:         "HB-042",
		EventTitle: "Go Fundamentals",
		Organizer:  "Jamie Doe",
	}

	require.True(t, Matches(b, Filters{Search: "fundamentals"}))
	require.True(t, Matches(b, Filters{Search: "hb-042"}))
	require.True(t, Matches(b, Filters{Search: "jamie"}))
	require.False(t, Matches(b, Filters{Search: "kubernetes"}))
}

func TestPaginate_FiltersCombined(t *testing.T) {
	source := []*domain.Booking{
		{ID: "A", AcademyID: "X", Status: domain.StatusApproved, EventTitle: "Go"},
		{ID: "B", AcademyID: "X", Status: domain.StatusUpcoming, EventTitle: "Go"},
		{ID: "C", AcademyID: "Y", Status: domain.StatusApproved, EventTitle: "Go"},
		{ID: "D", AcademyID: "X", Status: domain.StatusRejected, EventTitle: "Go"},
	}

	result := Paginate(source, 1, 10, Filters{Status: "approved", Academy: "X"})
	require.Equal(t, 2, result.TotalCount)
	require.Equal(t, "A", result.Items[0].ID)
	require.Equal(t, "B", result.Items[1].ID)
}
