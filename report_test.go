package pricebook

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportTables(t *testing.T) {
	r := NewReport(sampleLedger())

	var names []string
	for _, tbl := range r.Tables() {
		names = append(names, tbl.Name)
		for i, row := range tbl.Rows {
			assert.Len(t, row, len(tbl.Header), "%s row %d", tbl.Name, i)
		}
	}
	assert.Equal(t, []string{SheetRecords, SheetReturns, SheetLatest, SheetAverage, SheetYearly, SheetIncrease, SheetConsecutive}, names)

	records := r.RecordsTable()
	assert.Len(t, records.Rows, 12)
	// first record in date order is B002 on 2023-12-30
	assert.Equal(t, []string{"2023/12/30", "2023", "B002", "item B002", "10", "支", "$40", "$400"}, records.Strings()[0])

	returns := r.ReturnsTable()
	require.Len(t, returns.Rows, 3)
	assert.Equal(t, []string{"2024/01/02", "2024", "Z005", "item Z005", "-5", "支", "40", "-200"}, returns.Strings()[0])

	latest := r.LatestTable()
	assert.Equal(t, []string{"品項編號", "品項名稱", "最新進價", "最新進貨日"}, latest.Header)
	assert.Equal(t, []string{"A001", "item A001", "60", "2024/05/11"}, latest.Strings()[0])

	increase, ok := r.Table(SheetIncrease)
	require.True(t, ok)
	assert.Equal(t, []string{"C003", "item C003", "$35", "2024/04/01", "$40", "2024/05/01"}, increase.Strings()[2])

	consecutive := r.ConsecutiveTable()
	assert.Equal(t, [][]string{{"C003", "item C003", "$30", "2024/03/01", "$35", "2024/04/01", "$40", "2024/05/01"}}, consecutive.Strings())

	_, ok = r.Table("nope")
	assert.False(t, ok)
}

func TestRecordsTableNegativeAmount(t *testing.T) {
	r := NewReport(NewLedger(ret("2024-05-12", "A001", 5, 50)))
	assert.Equal(t, "$-250", r.RecordsTable().Strings()[0][7])
}

func TestReportIdempotent(t *testing.T) {
	encode := func() string {
		var b bytes.Buffer
		require.NoError(t, EncodeJSON(&b, NewReport(sampleLedger())))
		return b.String()
	}
	assert.Equal(t, encode(), encode())
}

func TestEncodeJSON(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, EncodeJSON(&b, NewReport(NewLedger())))
	want := `{"整理後明細":[],"退貨明細":[],"最新進價":[],"平均進貨成本":[],"年度進貨成本":[],"漲價提醒":[],"連續漲價提醒":[]}` + "\n"
	assert.Equal(t, want, b.String())

	b.Reset()
	require.NoError(t, EncodeJSON(&b, NewReport(NewLedger(buy("2024-05-10", "A001", 10, 50)))))
	assert.Contains(t, b.String(), `"最新進價":[{"code":"A001","name":"item A001","unitPrice":50,"date":"2024-05-10"}]`)
}

func TestEncodeLatestCSV(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, EncodeLatestCSV(&b, NewReport(sampleLedger())))
	out := b.String()
	assert.True(t, strings.HasPrefix(out, "\ufeff品項編號,品項名稱,最新進價,最新進貨日\n"))
	assert.Contains(t, out, "B002,new name,45,2024/02/01\n")
	assert.Equal(t, 5, strings.Count(out, "\n"))
}
