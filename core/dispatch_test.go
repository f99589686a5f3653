package core_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/charxcore/core"
)

func byteOf(b byte) *byte { return &b }

var _ = Describe("Dispatcher", func() {
	var (
		reg *core.Register
		cfg *core.Config
	)

	BeforeEach(func() {
		reg = core.NewRegister()
		cfg = &core.Config{ChkRange: true, BigEndian: false}
	})

	It("honours reset_all over every other request", func() {
		reg.WriteUTF8(0xE2)
		res := reg.Step(core.Request{ResetAll: true, WriteUTF8: byteOf(0x41)}, cfg)

		Expect(res.R).To(Equal(uint32(0)))
		Expect(res.Rbip).To(Equal(uint8(0)))
	})

	It("writes one UTF-8 byte per step and reports observable state", func() {
		reg.Step(core.Request{WriteUTF8: byteOf(0xE2)}, cfg)
		reg.Step(core.Request{WriteUTF8: byteOf(0x98)}, cfg)
		res := reg.Step(core.Request{WriteUTF8: byteOf(0x83)}, cfg)

		Expect(res.R).To(Equal(uint32(0x2603)))
		Expect(res.Ready).To(BeTrue())
		Expect(res.Error).To(BeFalse())
		Expect(res.Normal).To(BeTrue())
	})

	It("reads one byte per step and reports bout_eof once drained", func() {
		reg.Step(core.Request{WriteUTF8: byteOf(0xE2)}, cfg)
		reg.Step(core.Request{WriteUTF8: byteOf(0x98)}, cfg)
		reg.Step(core.Request{WriteUTF8: byteOf(0x83)}, cfg)

		var bytes []byte
		for i := 0; i < 3; i++ {
			res := reg.Step(core.Request{ReadUTF8: true}, cfg)
			bytes = append(bytes, res.Byte)
			if i < 2 {
				Expect(res.BoutEOF).To(BeFalse())
			}
		}
		Expect(bytes).To(Equal([]byte{0xE2, 0x98, 0x83}))

		res := reg.Step(core.Request{ReadUTF8: true}, cfg)
		Expect(res.BoutEOF).To(BeTrue())
		Expect(res.Byte).To(Equal(byte(0)))
	})

	It("reset_read rewinds output pointers without touching R", func() {
		reg.Step(core.Request{WriteUTF8: byteOf(0xE2)}, cfg)
		reg.Step(core.Request{WriteUTF8: byteOf(0x98)}, cfg)
		reg.Step(core.Request{WriteUTF8: byteOf(0x83)}, cfg)

		reg.Step(core.Request{ReadUTF8: true}, cfg)
		reg.Step(core.Request{ReadUTF8: true}, cfg)

		res := reg.Step(core.Request{ResetRead: true}, cfg)
		Expect(res.R).To(Equal(uint32(0x2603)))
		Expect(res.Rbop).To(Equal(uint8(0)))

		res = reg.Step(core.Request{ReadUTF8: true}, cfg)
		Expect(res.Byte).To(Equal(byte(0xE2)))
	})

	It("honours reset_read ahead of any requested write or read", func() {
		reg.Step(core.Request{WriteUTF8: byteOf(0xE2)}, cfg)
		res := reg.Step(core.Request{ResetRead: true, WriteUTF8: byteOf(0x98)}, cfg)

		// reset_read must win: the second UTF-8 byte is not honoured, so R
		// still reflects only the first (in-progress) byte.
		Expect(res.Rbip).To(Equal(uint8(1)))
	})
})
