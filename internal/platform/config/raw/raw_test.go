package raw

import "testing"

func TestConfGet(t *testing.T) {
	t.Setenv("CORE_LOG_LEVEL", " debug ")
	core := New().Prefix("CORE_")

	tests := []struct {
		name string
		conf Conf
		key  string
		def  string
		want string
	}{
		{name: "prefixed hit", conf: core, key: "LOG_LEVEL", def: "info", want: "debug"},
		{name: "nested prefix", conf: core.Prefix("LOG_"), key: "LEVEL", def: "info", want: "debug"},
		{name: "missing returns default", conf: core, key: "LOG_FORMAT", def: "json", want: "json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.conf.Get(tt.key, tt.def); got != tt.want {
				t.Fatalf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestConfGetBool(t *testing.T) {
	c := New().Prefix("RB_")
	t.Setenv("RB_T1", "true")
	t.Setenv("RB_T2", "1")
	t.Setenv("RB_T3", " YES ")
	t.Setenv("RB_F1", "no")

	cases := []struct {
		key  string
		def  bool
		want bool
	}{
		{"T1", false, true},
		{"T2", false, true},
		{"T3", false, true},
		{"F1", true, false},
		{"MISSING", true, true},
	}
	for _, tc := range cases {
		if got := c.GetBool(tc.key, tc.def); got != tc.want {
			t.Fatalf("GetBool(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestConfGetInt(t *testing.T) {
	c := New().Prefix("RI_")
	t.Setenv("RI_N", " 12 ")
	t.Setenv("RI_NEG", "-1")
	t.Setenv("RI_BAD", "1x")

	if got := c.GetInt("N", 0); got != 12 {
		t.Fatalf("GetInt = %d", got)
	}
	if got := c.GetInt("NEG", 5); got != 5 {
		t.Fatalf("negative -> default, got %d", got)
	}
	if got := c.GetInt("BAD", 5); got != 5 {
		t.Fatalf("malformed -> default, got %d", got)
	}
	if got := c.GetInt("MISSING", 7); got != 7 {
		t.Fatalf("missing -> default, got %d", got)
	}
}
