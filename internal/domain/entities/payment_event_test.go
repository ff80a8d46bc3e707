package entities_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/federa-backend/internal/domain/entities"
)

var _ = Describe("PaymentEvent", func() {
	event := func(playerIDs string) entities.PaymentEvent {
		return entities.PaymentEvent{
			Type: entities.PaymentEventSucceeded,
			Metadata: map[string]string{
				entities.MetadataTypeKey:      entities.MetadataTypeMember,
				entities.MetadataPlayerIDsKey: playerIDs,
			},
		}
	}

	DescribeTable("BeneficiaryIDs",
		func(raw string, expected []string) {
			Expect(event(raw).BeneficiaryIDs()).To(Equal(expected))
		},
		Entry("simple list", "p1,p2,p3", []string{"p1", "p2", "p3"}),
		Entry("spaces trimmed", " p1 , p2 ", []string{"p1", "p2"}),
		Entry("empties dropped", "p1,,p2,", []string{"p1", "p2"}),
		Entry("duplicates keep first", "p2,p1,p2", []string{"p2", "p1"}),
		Entry("only separators", " , ,", []string{}),
		Entry("missing key", "", []string{}),
	)

	It("recognizes membership payments only", func() {
		Expect(event("p1").IsMembershipPayment()).To(BeTrue())

		other := event("p1")
		other.Type = "charge.refunded"
		Expect(other.IsMembershipPayment()).To(BeFalse())

		donation := event("p1")
		donation.Metadata[entities.MetadataTypeKey] = "donation"
		Expect(donation.IsMembershipPayment()).To(BeFalse())
	})

	DescribeTable("Amount and currency",
		func(currency string, minor int64, amount float64, normalized string) {
			e := entities.PaymentEvent{Currency: currency, AmountMinor: minor}
			Expect(e.Amount()).To(BeNumerically("~", amount, 1e-9))
			Expect(e.NormalizedCurrency()).To(Equal(normalized))
		},
		Entry("two decimals", "brl", int64(12345), 123.45, "BRL"),
		Entry("zero decimals", "jpy", int64(5000), 5000.0, "JPY"),
		Entry("three decimals", "kwd", int64(5124), 5.124, "KWD"),
		Entry("already upper-case", "USD", int64(100), 1.0, "USD"),
	)
})
