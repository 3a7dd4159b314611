package helper

import "testing"

func TestRequiredFields(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		fields []string
		want   bool
	}{
		{"all set", []string{"a", "b"}, true},
		{"one empty", []string{"a", ""}, false},
		{"whitespace only", []string{"   "}, false},
		{"none", nil, true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := RequiredFields(tc.fields...); got != tc.want {
				t.Errorf("RequiredFields(%v) = %v, want %v", tc.fields, got, tc.want)
			}
		})
	}
}

func TestAnyField(t *testing.T) {
	t.Parallel()
	if AnyField("", "   ") {
		t.Error("blank fields must not satisfy AnyField")
	}
	if !AnyField("", "x") {
		t.Error("one set field must satisfy AnyField")
	}
}

func TestFileTypeChecks(t *testing.T) {
	t.Parallel()
	cases := []struct {
		path    string
		isImage bool
		isVideo bool
	}{
		{"avatar.PNG", true, false},
		{"thumb.jpeg", true, false},
		{"clip.mp4", false, true},
		{"clip.MOV", false, true},
		{"notes.txt", false, false},
		{"noext", false, false},
	}
	for _, tc := range cases {
		if got := IsImageFile(tc.path); got != tc.isImage {
			t.Errorf("IsImageFile(%s) = %v, want %v", tc.path, got, tc.isImage)
		}
		if got := IsVideoFile(tc.path); got != tc.isVideo {
			t.Errorf("IsVideoFile(%s) = %v, want %v", tc.path, got, tc.isVideo)
		}
	}
}

func TestGetMimeTypeFromExtension(t *testing.T) {
	t.Parallel()
	if got := GetMimeTypeFromExtension("clip.mp4"); got != "video/mp4" {
		t.Errorf("unexpected mime type %q", got)
	}
	if got := GetMimeTypeFromExtension("file.unknown"); got != "application/octet-stream" {
		t.Errorf("unexpected fallback %q", got)
	}
}
