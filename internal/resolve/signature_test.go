package resolve

import (
	"errors"
	"testing"

	"noteremote/internal/model"
)

// flakyWindow fails individual attribute reads on demand.
type flakyWindow struct {
	fakeWindow
	titleErr error
	classErr error
	pidErr   error
}

func (f *flakyWindow) Title() (string, error) {
	if f.titleErr != nil {
		return "", f.titleErr
	}
	return f.title, nil
}

func (f *flakyWindow) ClassName() (string, error) {
	if f.classErr != nil {
		return "", f.classErr
	}
	return f.class, nil
}

func (f *flakyWindow) ProcessID() (uint32, error) {
	if f.pidErr != nil {
		return 0, f.pidErr
	}
	return f.pid, nil
}

func TestBuildSignatureCapturesAllFields(t *testing.T) {
	w := &fakeWindow{handle: 0x77, title: "Work - OneNote", class: "ApplicationFrameWindow", pid: 7}
	insp := &fakeInspector{paths: map[uint32]string{7: `C:/apps/onenote.exe`}}

	sig := BuildSignature(w, insp)

	if sig.Handle != 0x77 || sig.Title != "Work - OneNote" || sig.ClassName != "ApplicationFrameWindow" {
		t.Fatalf("unexpected signature: %+v", sig)
	}
	if sig.ProcessID != 7 || sig.ExecutablePath == "" || sig.ExecutableName != "onenote.exe" {
		t.Fatalf("process fields not captured: %+v", sig)
	}
}

func TestBuildSignatureGuardsEachFieldIndependently(t *testing.T) {
	w := &flakyWindow{
		fakeWindow: fakeWindow{handle: 0x77, title: "ignored", class: "ClassA", pid: 7},
		titleErr:   errors.New("title unavailable"),
	}
	insp := &fakeInspector{paths: map[uint32]string{7: "onenote.exe"}}

	sig := BuildSignature(w, insp)

	if sig.Title != "" {
		t.Errorf("failed title read must stay zero, got %q", sig.Title)
	}
	if sig.ClassName != "ClassA" || sig.ProcessID != 7 || sig.ExecutableName != "onenote.exe" {
		t.Fatalf("other fields must still be captured: %+v", sig)
	}
}

func TestBuildSignatureNoPIDSkipsInspection(t *testing.T) {
	w := &flakyWindow{
		fakeWindow: fakeWindow{handle: 0x77, title: "t", class: "c"},
		pidErr:     errors.New("pid unavailable"),
	}
	insp := &fakeInspector{}

	sig := BuildSignature(w, insp)
	if insp.calls != 0 {
		t.Fatalf("no pid means no inspection, got %d calls", insp.calls)
	}
	if sig.ExecutablePath != "" || sig.ExecutableName != "" {
		t.Fatalf("executable fields must stay zero: %+v", sig)
	}
	if sig.IsZero() {
		t.Fatal("signature with a title and class is not zero")
	}
}

func TestSignatureIsZero(t *testing.T) {
	if !(model.WindowSignature{}).IsZero() {
		t.Error("empty signature must be zero")
	}
	if (model.WindowSignature{Title: "x"}).IsZero() {
		t.Error("signature with a title is not zero")
	}
}
