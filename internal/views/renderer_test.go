package views_test

import (
	"bytes"
	"testing/fstest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/antonrybalko/webapp-go/internal/domain"
	"github.com/antonrybalko/webapp-go/internal/views"
)

var _ = Describe("Renderer", func() {
	Context("with the embedded templates", func() {
		var renderer *views.Renderer

		BeforeEach(func() {
			var err error
			renderer, err = views.NewRenderer(nil)
			Expect(err).ToNot(HaveOccurred())
		})

		It("should provide every home view", func() {
			Expect(renderer.Has("Index")).To(BeTrue())
			Expect(renderer.Has("About")).To(BeTrue())
			Expect(renderer.Has("Contact")).To(BeTrue())
			Expect(renderer.Has("layout")).To(BeFalse())
		})

		It("should render the about message inside the layout", func() {
			var buf bytes.Buffer
			err := renderer.Render(&buf, "About", map[string]any{
				"Title":   "About",
				"AppName": "Test Site",
				"Message": "All about us",
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(buf.String()).To(HavePrefix("<!DOCTYPE html>"))
			Expect(buf.String()).To(ContainSubstring("<h3>All about us</h3>"))
			Expect(buf.String()).To(ContainSubstring("<title>About - Test Site</title>"))
		})

		It("should escape message content", func() {
			var buf bytes.Buffer
			err := renderer.Render(&buf, "About", map[string]any{
				"Message": "<script>alert(1)</script>",
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(buf.String()).ToNot(ContainSubstring("<script>"))
		})

		It("should render contact details", func() {
			var buf bytes.Buffer
			err := renderer.Render(&buf, "Contact", map[string]any{
				"Title":   "Contact",
				"AppName": "Test Site",
				"Message": "Reach us",
				"Contact": domain.ContactInfo{
					Address:      []string{"1 Main St"},
					Phone:        "555-0100",
					SupportEmail: "help@example.com",
				},
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(buf.String()).To(ContainSubstring("1 Main St"))
			Expect(buf.String()).To(ContainSubstring("555-0100"))
			Expect(buf.String()).To(ContainSubstring("mailto:help@example.com"))
			Expect(buf.String()).ToNot(ContainSubstring("Marketing:"))
		})

		It("should fail for an unknown view", func() {
			var buf bytes.Buffer
			err := renderer.Render(&buf, "Missing", nil)

			Expect(err).To(MatchError(views.ErrViewNotFound))
		})
	})

	Context("with a custom file system", func() {
		It("should fail when the layout is missing", func() {
			fsys := fstest.MapFS{
				"About.html": {Data: []byte(`{{define "body"}}x{{end}}`)},
			}

			_, err := views.NewRendererFS(fsys, nil)
			Expect(err).To(HaveOccurred())
		})

		It("should load views next to the layout", func() {
			fsys := fstest.MapFS{
				"layout.html": {Data: []byte(`[{{template "body" .}}]`)},
				"Hello.html":  {Data: []byte(`{{define "body"}}hello {{.Name}}{{end}}`)},
			}

			renderer, err := views.NewRendererFS(fsys, nil)
			Expect(err).ToNot(HaveOccurred())

			var buf bytes.Buffer
			Expect(renderer.Render(&buf, "Hello", map[string]any{"Name": "gopher"})).To(Succeed())
			Expect(buf.String()).To(Equal("[hello gopher]"))
		})
	})
})
