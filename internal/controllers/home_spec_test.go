package controllers_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/antonrybalko/webapp-go/internal/controllers"
)

var _ = Describe("HomeController", func() {
	var sut *controllers.HomeController

	BeforeEach(func() {
		sut = controllers.NewHomeController(nil, nil)
	})

	Context("when About is called", func() {
		It("should fill in the message", func() {
			sut.About()

			Expect(sut.ViewBag().String(controllers.KeyMessage)).NotTo(BeEmpty())
		})

		It("should keep the message when called twice", func() {
			sut.About()
			sut.About()

			Expect(sut.ViewBag().String(controllers.KeyMessage)).NotTo(BeEmpty())
		})
	})

	Context("when Contact is called", func() {
		It("should return a result", func() {
			Expect(sut.Contact()).NotTo(BeNil())
		})
	})

	Context("when Contact is followed by About", func() {
		It("should satisfy both postconditions", func() {
			result := sut.Contact()
			sut.About()

			Expect(result).NotTo(BeNil())
			Expect(sut.ViewBag().String(controllers.KeyMessage)).NotTo(BeEmpty())
		})
	})
})
