package export

import "testing"

func TestOrderedMapPreservesInsertionOrder(t *testing.T) {
	m := newOrderedMap()
	m.Set("zebra", "z")
	m.Set("apple", "a")
	m.Set("mango", "m")

	data, err := m.MarshalIndent()
	if err != nil {
		t.Fatalf("MarshalIndent failed: %v", err)
	}

	want := "{\n  \"zebra\": \"z\",\n  \"apple\": \"a\",\n  \"mango\": \"m\"\n}"
	if string(data) != want {
		t.Errorf("encoded output mismatch:\ngot:\n%s\nwant:\n%s", data, want)
	}
}

func TestOrderedMapReplaceKeepsPosition(t *testing.T) {
	m := newOrderedMap()
	m.Set("first", "1")
	m.Set("second", "2")
	m.Set("first", "one")

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	if v, _ := m.Get("first"); v != "one" {
		t.Errorf("Get(first) = %v, want one", v)
	}

	data, err := m.MarshalIndent()
	if err != nil {
		t.Fatalf("MarshalIndent failed: %v", err)
	}
	want := "{\n  \"first\": \"one\",\n  \"second\": \"2\"\n}"
	if string(data) != want {
		t.Errorf("encoded output mismatch:\ngot:\n%s\nwant:\n%s", data, want)
	}
}

func TestOrderedMapNestingAndEscaping(t *testing.T) {
	nested := newOrderedMap()
	nested.Set("line", "a\nb")

	m := newOrderedMap()
	m.Set("菜单", nested)
	m.Set("quote", `say "hi"`)

	data, err := m.MarshalIndent()
	if err != nil {
		t.Fatalf("MarshalIndent failed: %v", err)
	}
	want := "{\n  \"菜单\": {\n    \"line\": \"a\\nb\"\n  },\n  \"quote\": \"say \\\"hi\\\"\"\n}"
	if string(data) != want {
		t.Errorf("encoded output mismatch:\ngot:\n%s\nwant:\n%s", data, want)
	}
}

func TestOrderedMapEmpty(t *testing.T) {
	m := newOrderedMap()
	data, err := m.MarshalIndent()
	if err != nil {
		t.Fatalf("MarshalIndent failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("empty map encoded as %q, want {}", data)
	}
}
