package model

import "testing"

func TestUnmarshalRowsRejectsMalformed(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "{not json", `"a string"`, "{}"} {
		if rows, ok := UnmarshalRows([]byte(in)); ok {
			t.Fatalf("UnmarshalRows(%q) accepted: %v", in, rows)
		}
	}
}

func TestUnmarshalRowsMintsMissingIDs(t *testing.T) {
	t.Parallel()

	payload := `{"version":1,"rows":[{"baseUrl":"https://a.example","source":"tw"}]}`
	rows, ok := UnmarshalRows([]byte(payload))
	if !ok || len(rows) != 1 {
		t.Fatalf("UnmarshalRows() = %v, %v", rows, ok)
	}
	if rows[0].ID == "" {
		t.Fatal("row without an id came back unaddressable")
	}
	if got := rows[0].Get(FieldSource); got != "tw" {
		t.Fatalf("source = %q", got)
	}
}

func TestMarshalRoundTripPreservesFieldsAndMarks(t *testing.T) {
	t.Parallel()

	in := []Row{NewRowWith(map[Field]string{
		FieldBaseURL:  "https://a.example",
		FieldCampaign: "spring",
	})}
	in[0].Checked = true

	data, err := MarshalRows(in)
	if err != nil {
		t.Fatalf("MarshalRows() error: %v", err)
	}
	out, ok := UnmarshalRows(data)
	if !ok || len(out) != 1 {
		t.Fatalf("round trip = %v, %v", out, ok)
	}
	if out[0].ID != in[0].ID || !out[0].Checked {
		t.Fatalf("identity or mark lost: %+v", out[0])
	}
	if got := out[0].Get(FieldCampaign); got != "spring" {
		t.Fatalf("campaign = %q", got)
	}
}
