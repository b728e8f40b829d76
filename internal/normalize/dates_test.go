package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate_EmptyString(t *testing.T) {
	assert.Equal(t, "", FormatDate(""))
}

func TestFormatDate_BareYear(t *testing.T) {
	assert.Equal(t, "2025", FormatDate("2025"))
}

func TestFormatDate_BareYearWithWhitespace(t *testing.T) {
	assert.Equal(t, "2025", FormatDate(" 2025 "))
}

func TestFormatDate_FullDate(t *testing.T) {
	assert.Equal(t, "Jun 2024", FormatDate("2024-06-15"))
}

func TestFormatDate_YearMonth(t *testing.T) {
	assert.Equal(t, "Jun 2021", FormatDate("2021-06"))
}

func TestFormatDate_LongMonthName(t *testing.T) {
	assert.Equal(t, "Jan 2023", FormatDate("January 2023"))
}

func TestFormatDate_Unparseable(t *testing.T) {
	assert.Equal(t, "not-a-date", FormatDate("not-a-date"))
}

func TestFormatDate_FiveDigits(t *testing.T) {
	// Not a bare year and not a calendar date: passes through.
	assert.Equal(t, "20255", FormatDate("20255"))
}

func TestFormatDateRange_Current(t *testing.T) {
	assert.Equal(t, "Jun 2021 -- Present", FormatDateRange("2021-06", "", true))
}

func TestFormatDateRange_Completed(t *testing.T) {
	assert.Equal(t, "Jun 2021 -- Aug 2023", FormatDateRange("2021-06", "2023-08", false))
}

func TestFormatDateRange_CurrentIgnoresEndDate(t *testing.T) {
	assert.Equal(t, "Jun 2021 -- Present", FormatDateRange("2021-06", "2023-08", true))
}

func TestFormatDateRange_MissingDates(t *testing.T) {
	assert.Equal(t, " -- ", FormatDateRange("", "", false))
}
