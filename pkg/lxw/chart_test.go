package lxw

import "testing"

func TestChartBuild(t *testing.T) {
	c := newChart(ChartTypeColumn)
	s := c.AddSeries("=Sheet1!$A$1:$A$3", "=Sheet1!$B$1:$B$3")
	s.SetName("Revenue")
	c.TitleSetName("Quarterly")
	c.XAxis().SetName("Quarter")
	c.YAxis().SetMax(100)

	built, err := c.build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(built.Series) != 1 {
		t.Fatalf("series count = %d, want 1", len(built.Series))
	}
	es := built.Series[0]
	if es.Name != "Revenue" {
		t.Errorf("series name = %q, want Revenue", es.Name)
	}
	if es.Categories != "Sheet1!$A$1:$A$3" {
		t.Errorf("categories = %q", es.Categories)
	}
	if es.Values != "Sheet1!$B$1:$B$3" {
		t.Errorf("values = %q", es.Values)
	}
	if len(built.Title) != 1 || built.Title[0].Text != "Quarterly" {
		t.Errorf("title = %+v, want Quarterly", built.Title)
	}
	if len(built.XAxis.Title) != 1 || built.XAxis.Title[0].Text != "Quarter" {
		t.Errorf("x axis title = %+v, want Quarter", built.XAxis.Title)
	}
	if built.YAxis.Maximum == nil || *built.YAxis.Maximum != 100 {
		t.Errorf("y axis maximum = %v, want 100", built.YAxis.Maximum)
	}
}

func TestChartBuildUnknownType(t *testing.T) {
	c := newChart(200)
	if _, err := c.build(); Code(err) != ErrParameterValidation {
		t.Errorf("build with bad type = %v, want code %d", Code(err), ErrParameterValidation)
	}
}

func TestSeriesRanges(t *testing.T) {
	c := newChart(ChartTypeLine)
	s := c.AddSeries("", "")
	s.SetCategories("Data", 0, 0, 4, 0)
	s.SetValues("Data", 0, 1, 4, 1)
	s.SetNameRange("Data", 0, 2)

	if s.categories != "Data!$A$1:$A$5" {
		t.Errorf("categories = %q, want Data!$A$1:$A$5", s.categories)
	}
	if s.values != "Data!$B$1:$B$5" {
		t.Errorf("values = %q, want Data!$B$1:$B$5", s.values)
	}
	if s.nameRange != "Data!$C$1" {
		t.Errorf("name range = %q, want Data!$C$1", s.nameRange)
	}
	if got := s.seriesName(); got != "=Data!$C$1" {
		t.Errorf("seriesName = %q, want =Data!$C$1", got)
	}
}

func TestSetLabelsCustom(t *testing.T) {
	c := newChart(ChartTypeColumn)
	s := c.AddSeries("", "=Sheet1!$A$1:$A$3")

	if err := s.SetLabelsCustom(nil); Code(err) != ErrNullParameterIgnored {
		t.Errorf("empty labels = %v, want code %d", Code(err), ErrNullParameterIgnored)
	}

	labels := []DataLabel{
		{Value: "Alpha"},
		{Hide: true},
	}
	if err := s.SetLabelsCustom(labels); Code(err) != ErrFeatureNotSupported {
		t.Errorf("custom labels = %v, want code %d", Code(err), ErrFeatureNotSupported)
	}
	// The rejected call must not switch default labels on.
	if s.labels.on {
		t.Error("rejected custom labels enabled series labels")
	}
}

func TestLabelsOptions(t *testing.T) {
	c := newChart(ChartTypePie)
	s := c.AddSeries("", "=Sheet1!$A$1:$A$4")
	s.SetLabelsOptions(true, false, true)
	s.SetLabelsPercentage()
	s.SetLabelsPosition(ChartLabelPositionOutsideEnd)

	built, err := c.build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !built.PlotArea.ShowVal {
		t.Error("ShowVal not set")
	}
	if built.PlotArea.ShowCatName {
		t.Error("ShowCatName set unexpectedly")
	}
	if !built.PlotArea.ShowSerName {
		t.Error("ShowSerName not set")
	}
	if !built.PlotArea.ShowPercent {
		t.Error("ShowPercent not set")
	}
}

func TestLegendPosition(t *testing.T) {
	c := newChart(ChartTypeBar)
	c.AddSeries("", "=Sheet1!$A$1:$A$2")

	built, err := c.build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if built.Legend.Position != "right" {
		t.Errorf("default legend position = %q, want right", built.Legend.Position)
	}

	c.LegendSetPosition(ChartLegendBottom)
	built, err = c.build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if built.Legend.Position != "bottom" {
		t.Errorf("legend position = %q, want bottom", built.Legend.Position)
	}
}

func TestErrorBars(t *testing.T) {
	c := newChart(ChartTypeLine)
	s := c.AddSeries("", "=Sheet1!$A$1:$A$5")

	eb := s.GetErrorBars(ErrorBarAxisY)
	eb.Set(ErrorBarTypePercent, 5)
	eb.SetDirection(ErrorBarDirPlus)
	eb.SetEndcap(ErrorBarNoEndCap)

	if s.errorBarsY.barType != ErrorBarTypePercent || s.errorBarsY.value != 5 {
		t.Errorf("error bars = %+v, want percent/5", s.errorBarsY)
	}
	if s.errorBarsY.direction != ErrorBarDirPlus {
		t.Errorf("direction = %d, want %d", s.errorBarsY.direction, ErrorBarDirPlus)
	}
	if s.GetErrorBars(ErrorBarAxisX) != &s.errorBarsX {
		t.Error("x axis selector returned wrong bars")
	}
}

func TestAxisGet(t *testing.T) {
	c := newChart(ChartTypeColumn)
	if c.AxisGet(AxisTypeX) != c.XAxis() {
		t.Error("AxisGet(x) != XAxis()")
	}
	if c.AxisGet(AxisTypeY) != c.YAxis() {
		t.Error("AxisGet(y) != YAxis()")
	}
	if c.AxisGet(AxisTypeY2) != c.Y2Axis() {
		t.Error("AxisGet(y2) != Y2Axis()")
	}
	// Out of range falls back to the category axis.
	if c.AxisGet(9) != c.XAxis() {
		t.Error("AxisGet(9) != XAxis()")
	}
}

func TestShowBlanksAs(t *testing.T) {
	tests := []struct {
		option uint8
		want   string
	}{
		{ChartBlanksAsGap, "gap"},
		{ChartBlanksAsZero, "zero"},
		{ChartBlanksAsConnected, "span"},
	}
	for _, tt := range tests {
		if got := blanksAs(tt.option); got != tt.want {
			t.Errorf("blanksAs(%d) = %q, want %q", tt.option, got, tt.want)
		}
	}
}
