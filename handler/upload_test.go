package handler_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestCVUploadServeDelete(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t)

	pdf := []byte("%PDF-1.4 test resume")
	resp := s.multipartUpload(t, "/api/cv", "cv", "resume.pdf", "application/pdf", pdf, nil, cookie)
	body := decodeBody(t, resp)
	if body["success"] != true {
		t.Fatalf("upload = %v", body)
	}
	url := dataField(t, body)["url"].(string)
	if url != "/uploads/cv.pdf" {
		t.Fatalf("url = %q", url)
	}

	// The reference landed on the profile.
	profile, err := s.store.GetProfile(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if profile == nil || profile.ResumeURL != url {
		t.Fatalf("profile resume url = %+v", profile)
	}

	// Public download streams the PDF inline.
	resp = s.do(t, http.MethodGet, "/api/cv", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("download returned %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.HasPrefix(cd, "inline") {
		t.Fatalf("content disposition = %q", cd)
	}
	got, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, pdf) {
		t.Fatal("served bytes differ from upload")
	}

	// Delete clears the reference and the file.
	resp = s.do(t, http.MethodDelete, "/api/cv", nil, cookie)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete returned %d", resp.StatusCode)
	}
	resp = s.do(t, http.MethodGet, "/api/cv", nil, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("download after delete returned %d, want 404", resp.StatusCode)
	}
}

func TestProfileUpdateKeepsResumeReference(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t)

	pdf := []byte("%PDF-1.4 test resume")
	resp := s.multipartUpload(t, "/api/cv", "cv", "resume.pdf", "application/pdf", pdf, nil, cookie)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("cv upload returned %d", resp.StatusCode)
	}

	// An edit form that omits resumeUrl must not clear the uploaded CV.
	resp = s.do(t, http.MethodPut, "/api/profile", map[string]any{
		"name":  "Ada",
		"title": "Engineer",
		"bio":   "Builds things.",
		"email": "ada@example.com",
	}, cookie)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("profile update returned %d", resp.StatusCode)
	}

	resp = s.do(t, http.MethodGet, "/api/profile", nil, nil)
	data := dataField(t, decodeBody(t, resp))
	if data["name"] != "Ada" {
		t.Fatalf("name = %v", data["name"])
	}
	if data["resumeUrl"] != "/uploads/cv.pdf" {
		t.Fatalf("resumeUrl = %v after profile edit, want /uploads/cv.pdf", data["resumeUrl"])
	}

	// The CV still serves.
	resp = s.do(t, http.MethodGet, "/api/cv", nil, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("cv download after profile edit returned %d", resp.StatusCode)
	}
}

func TestCVUploadRejections(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t)

	// Oversized PDF.
	big := bytes.Repeat([]byte("a"), 6<<20)
	resp := s.multipartUpload(t, "/api/cv", "cv", "big.pdf", "application/pdf", big, nil, cookie)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("oversized upload returned %d, want 400", resp.StatusCode)
	}

	// Wrong content type.
	resp = s.multipartUpload(t, "/api/cv", "cv", "cv.txt", "text/plain", []byte("hi"), nil, cookie)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("non-pdf upload returned %d, want 400", resp.StatusCode)
	}

	// Neither rejection touched the profile.
	profile, err := s.store.GetProfile(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if profile != nil && profile.ResumeURL != "" {
		t.Fatalf("rejected upload changed resume url: %+v", profile)
	}
}

func TestProjectImageUploadAndClear(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t)

	resp := s.do(t, http.MethodPost, "/api/projects", map[string]any{
		"title": "p", "description": "d", "technologies": []string{"Go"},
	}, cookie)
	id := dataField(t, decodeBody(t, resp))["id"].(string)

	png := []byte{0x89, 'P', 'N', 'G', 0, 1, 2, 3}
	resp = s.multipartUpload(t, "/api/projects/image", "image", "shot.png", "image/png",
		png, map[string]string{"projectId": id}, cookie)
	body := decodeBody(t, resp)
	if body["success"] != true {
		t.Fatalf("upload = %v", body)
	}
	imageURL := body["imageUrl"].(string)
	if !strings.HasPrefix(imageURL, "data:image/png;base64,") {
		t.Fatalf("imageUrl = %q", imageURL)
	}

	// Stored on the project.
	resp = s.do(t, http.MethodGet, "/api/projects/"+id, nil, nil)
	data := dataField(t, decodeBody(t, resp))
	if data["imageUrl"] != imageURL {
		t.Fatal("image url not persisted on project")
	}

	// Clearing removes it.
	resp = s.do(t, http.MethodDelete, "/api/projects/image", map[string]string{"projectId": id}, cookie)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("clear returned %d", resp.StatusCode)
	}
	resp = s.do(t, http.MethodGet, "/api/projects/"+id, nil, nil)
	data = dataField(t, decodeBody(t, resp))
	if url, found := data["imageUrl"]; found && url != "" {
		t.Fatalf("image url not cleared: %v", url)
	}
}

func TestProjectImageRejections(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t)

	resp := s.do(t, http.MethodPost, "/api/projects", map[string]any{
		"title": "p", "description": "d", "technologies": []string{"Go"},
	}, cookie)
	id := dataField(t, decodeBody(t, resp))["id"].(string)

	// Disallowed MIME type.
	resp = s.multipartUpload(t, "/api/projects/image", "image", "anim.gif", "image/gif",
		[]byte("GIF89a"), map[string]string{"projectId": id}, cookie)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("gif upload returned %d, want 400", resp.StatusCode)
	}

	// Missing project id.
	resp = s.multipartUpload(t, "/api/projects/image", "image", "shot.png", "image/png",
		[]byte{1}, nil, cookie)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing project id returned %d, want 400", resp.StatusCode)
	}

	// Unknown project id.
	resp = s.multipartUpload(t, "/api/projects/image", "image", "shot.png", "image/png",
		[]byte{1}, map[string]string{"projectId": "missing"}, cookie)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown project returned %d, want 404", resp.StatusCode)
	}
}
