package listing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/academyhall/booking-gateway/internal/domain"
)

func TestControls_FilterChangeResetsPage(t *testing.T) {
	c := NewControls(10)
	c.SetPage(4)
	require.Equal(t, 4, c.Page())

	c.SetStatus("approved")
	require.Equal(t, 1, c.Page())

	c.SetPage(3)
	c.SetSearch("go")
	require.Equal(t, 1, c.Page())

	c.SetPage(2)
	c.SetHall("HALL-1")
	require.Equal(t, 1, c.Page())
}

func TestControls_SameValueKeepsPage(t *testing.T) {
	c := NewControls(10)
	c.SetStatus("approved")
	c.SetPage(5)

	// повторная установка того же значения не считается сменой фильтра
	c.SetStatus("approved")
	require.Equal(t, 5, c.Page())
}

func TestControls_AcademyChangeClearsHall(t *testing.T) {
	c := NewControls(10)
	c.SetAcademy("ACAD-1")
	c.SetHall("HALL-3")
	c.SetPage(2)

	c.SetAcademy("ACAD-2")
	require.Equal(t, 1, c.Page())
	require.Equal(t, domain.FilterAll, c.Filters().Hall)
	require.Equal(t, "ACAD-2", c.Filters().Academy)
}

func TestControls_PageClamp(t *testing.T) {
	c := NewControls(0)
	require.Equal(t, domain.DefaultPageSize, c.PageSize())

	c.SetPage(-3)
	require.Equal(t, 1, c.Page())
}
