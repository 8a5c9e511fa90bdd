package physutil_test

import (
	"io"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/physlab/internal/logging"
)

func TestPhysutil(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Physutil Suite")
}

var _ = BeforeSuite(func() {
	logging.Setup(io.Discard, "error")
})
