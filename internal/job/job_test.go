package job

import "testing"

func TestParseDuration(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		want   float64
		wantOk bool
	}{
		{"minutes_seconds", "03:04", 184, true},
		{"hours", "02:03:04", 7384, true},
		{"days", "1-02:03:04", 93784, true},
		{"fractional", "00:01.500", 1.5, true},
		{"zero", "00:00:00", 0, true},
		{"unlimited", "UNLIMITED", 0, false},
		{"empty", "", 0, false},
		{"garbage", "abc", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseDuration(tc.in)
			if ok != tc.wantOk {
				t.Fatalf("parseDuration(%q) ok = %v, want %v", tc.in, ok, tc.wantOk)
			}
			if ok && got != tc.want {
				t.Fatalf("parseDuration(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseRequestedMemory(t *testing.T) {
	cases := []struct {
		name      string
		in        string
		wantBytes float64
		wantScale memoryScale
	}{
		{"per_node", "4Gn", 4 << 30, perNode},
		{"per_core", "2000Mc", 2000 << 20, perCore},
		{"total", "8G", 8 << 30, perJob},
		{"plain_bytes", "1024", 1024, perJob},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bytes, scale, ok := parseRequestedMemory(tc.in)
			if !ok {
				t.Fatalf("parseRequestedMemory(%q) not ok", tc.in)
			}
			if bytes != tc.wantBytes || scale != tc.wantScale {
				t.Fatalf("parseRequestedMemory(%q) = (%v, %v), want (%v, %v)",
					tc.in, bytes, scale, tc.wantBytes, tc.wantScale)
			}
		})
	}
	if _, _, ok := parseRequestedMemory(""); ok {
		t.Fatalf("parseRequestedMemory(\"\") ok, want failure")
	}
}

func TestCPUEff(t *testing.T) {
	j := New("101")
	j.Update(map[string]string{
		"JobID":     "101",
		"State":     "COMPLETED",
		"TotalCPU":  "01:00:00",
		"Elapsed":   "02:00:00",
		"AllocCPUS": "1",
	})
	if got := j.Get("CPUEff"); got != "50.0%" {
		t.Fatalf("CPUEff = %q, want %q", got, "50.0%")
	}
}

func TestCPUEff_MissingDataRendersDash(t *testing.T) {
	j := New("101")
	j.Update(map[string]string{"JobID": "101", "State": "RUNNING"})
	if got := j.Get("CPUEff"); got != "---" {
		t.Fatalf("CPUEff = %q, want ---", got)
	}
}

func TestMemEff_PerNodeRequest(t *testing.T) {
	j := New("101")
	j.Update(map[string]string{
		"JobID":  "101",
		"State":  "COMPLETED",
		"REQMEM": "2Gn",
		"NNodes": "2",
	})
	j.Update(map[string]string{
		"JobID":  "101.batch",
		"MaxRSS": "1048576K", // 1 GiB of the 4 GiB requested
	})
	if got := j.Get("MemEff"); got != "25.0%" {
		t.Fatalf("MemEff = %q, want %q", got, "25.0%")
	}
}

func TestMemEff_PerCoreRequest(t *testing.T) {
	j := New("101")
	j.Update(map[string]string{
		"JobID":     "101",
		"State":     "COMPLETED",
		"REQMEM":    "1Gc",
		"AllocCPUS": "4",
	})
	j.Update(map[string]string{
		"JobID":  "101.0",
		"MaxRSS": "2097152K", // 2 GiB of 4 GiB
	})
	if got := j.Get("MemEff"); got != "50.0%" {
		t.Fatalf("MemEff = %q, want %q", got, "50.0%")
	}
}

func TestTimeEff(t *testing.T) {
	j := New("101")
	j.Update(map[string]string{
		"JobID":     "101",
		"State":     "COMPLETED",
		"Elapsed":   "00:30:00",
		"Timelimit": "01:00:00",
	})
	if got := j.Get("TimeEff"); got != "50.0%" {
		t.Fatalf("TimeEff = %q, want %q", got, "50.0%")
	}
}

func TestTimeEff_UnlimitedRendersDash(t *testing.T) {
	j := New("101")
	j.Update(map[string]string{
		"JobID":     "101",
		"State":     "RUNNING",
		"Elapsed":   "00:30:00",
		"Timelimit": "UNLIMITED",
	})
	if got := j.Get("TimeEff"); got != "---" {
		t.Fatalf("TimeEff = %q, want ---", got)
	}
}

func TestState_StripsCancelReason(t *testing.T) {
	j := New("101")
	j.Update(map[string]string{"JobID": "101", "State": "CANCELLED by 5042"})
	if got := j.Get("State"); got != "CANCELLED" {
		t.Fatalf("State = %q, want CANCELLED", got)
	}
}

func TestStepRecordsDoNotOverwriteMainFields(t *testing.T) {
	j := New("101")
	j.Update(map[string]string{"JobID": "101", "State": "COMPLETED", "Elapsed": "01:00:00"})
	j.Update(map[string]string{"JobID": "101.batch", "State": "FAILED", "Elapsed": "00:59:59"})
	if got := j.Get("State"); got != "COMPLETED" {
		t.Fatalf("State = %q, want main record's COMPLETED", got)
	}
	if got := j.Get("Elapsed"); got != "01:00:00" {
		t.Fatalf("Elapsed = %q, want main record's 01:00:00", got)
	}
}

func TestMaxRSS_IsStepMaximum(t *testing.T) {
	j := New("101")
	j.Update(map[string]string{"JobID": "101", "State": "COMPLETED"})
	j.Update(map[string]string{"JobID": "101.batch", "MaxRSS": "100K"})
	j.Update(map[string]string{"JobID": "101.0", "MaxRSS": "300K"})
	j.Update(map[string]string{"JobID": "101.extern", "MaxRSS": "5K"})
	if got := j.Get("MaxRSS"); got != "300K" {
		t.Fatalf("MaxRSS = %q, want 300K", got)
	}
}

func TestCollection_KeepsRequestedOrderAndDropsUnknown(t *testing.T) {
	c := NewCollection()
	c.SetJobs([]string{"7", "101"})

	entries := []map[string]string{
		{"JobID": "101", "State": "COMPLETED"},
		{"JobID": "999", "State": "COMPLETED"}, // not requested
		{"JobID": "7", "State": "RUNNING"},
		{"JobID": "7.batch", "MaxRSS": "10K"},
	}
	for _, entry := range entries {
		if err := c.ProcessEntry(entry); err != nil {
			t.Fatalf("ProcessEntry(%v) returned error: %v", entry, err)
		}
	}

	jobs := c.Jobs()
	if len(jobs) != 2 {
		t.Fatalf("len(Jobs) = %d, want 2", len(jobs))
	}
	if jobs[0].ID != "7" || jobs[1].ID != "101" {
		t.Fatalf("job order = [%s %s], want [7 101]", jobs[0].ID, jobs[1].ID)
	}
}

func TestCollection_ArrayElementsOfRequestedRoot(t *testing.T) {
	c := NewCollection()
	c.SetJobs([]string{"123"})

	for _, entry := range []map[string]string{
		{"JobID": "123_1", "State": "COMPLETED"},
		{"JobID": "123_2", "State": "FAILED"},
		{"JobID": "124_1", "State": "COMPLETED"}, // different root
	} {
		if err := c.ProcessEntry(entry); err != nil {
			t.Fatalf("ProcessEntry returned error: %v", err)
		}
	}

	jobs := c.Jobs()
	if len(jobs) != 2 {
		t.Fatalf("len(Jobs) = %d, want 2", len(jobs))
	}
	if jobs[0].ID != "123_1" || jobs[1].ID != "123_2" {
		t.Fatalf("job order = [%s %s], want [123_1 123_2]", jobs[0].ID, jobs[1].ID)
	}
}

func TestCollection_AcceptAll(t *testing.T) {
	c := NewCollection()
	c.AcceptAll()
	if err := c.ProcessEntry(map[string]string{"JobID": "55", "State": "RUNNING"}); err != nil {
		t.Fatalf("ProcessEntry returned error: %v", err)
	}
	if len(c.Jobs()) != 1 {
		t.Fatalf("len(Jobs) = %d, want 1", len(c.Jobs()))
	}
}

func TestCollection_MissingJobIDErrors(t *testing.T) {
	c := NewCollection()
	if err := c.ProcessEntry(map[string]string{"State": "RUNNING"}); err == nil {
		t.Fatalf("ProcessEntry returned nil error, want error")
	}
}

func TestHighlight(t *testing.T) {
	cases := []struct {
		name      string
		title     string
		value     string
		wantColor string
		wantOk    bool
	}{
		{"completed_green", "State", "COMPLETED", "green", true},
		{"failed_red", "State", "FAILED", "red", true},
		{"cancelled_yellow", "State", "CANCELLED", "yellow", true},
		{"pending_plain", "State", "PENDING", "", false},
		{"low_eff_red", "CPUEff", "12.5%", "red", true},
		{"high_eff_green", "MemEff", "95.0%", "green", true},
		{"mid_eff_plain", "TimeEff", "50.0%", "", false},
		{"dash_plain", "CPUEff", "---", "", false},
		{"other_column_plain", "Elapsed", "01:00:00", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			color, ok := Highlight(tc.title, tc.value)
			if ok != tc.wantOk || color != tc.wantColor {
				t.Fatalf("Highlight(%q, %q) = (%q, %v), want (%q, %v)",
					tc.title, tc.value, color, ok, tc.wantColor, tc.wantOk)
			}
		})
	}
}
