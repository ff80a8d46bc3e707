package entities

import "strings"

const (
	PaymentEventSucceeded = "payment_intent.succeeded"

	MetadataTypeKey      = "type"
	MetadataTypeMember   = "membership"
	MetadataPlayerIDsKey = "playerIds"
	MetadataPlanIDKey    = "planId"
)

// PaymentEvent é um evento do gateway de pagamento já verificado
type PaymentEvent struct {
	ID                   string
	Type                 string
	GatewayTransactionID string
	AmountMinor          int64
	Currency             string
	PaymentMethod        string
	Metadata             map[string]string
}

// IsMembershipPayment verifica se o evento deve gerar assinaturas
func (e PaymentEvent) IsMembershipPayment() bool {
	return e.Type == PaymentEventSucceeded && e.Metadata[MetadataTypeKey] == MetadataTypeMember
}

// BeneficiaryIDs extrai a lista de jogadores do metadata (separada por vírgula).
// Espaços e entradas vazias são descartados; duplicatas mantêm a primeira ocorrência.
func (e PaymentEvent) BeneficiaryIDs() []string {
	raw := e.Metadata[MetadataPlayerIDsKey]
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// zeroDecimalCurrencies não possuem unidade menor (valor já está em unidades)
var zeroDecimalCurrencies = map[string]struct{}{
	"BIF": {}, "CLP": {}, "DJF": {}, "GNF": {}, "JPY": {}, "KMF": {}, "KRW": {}, "MGA": {},
	"PYG": {}, "RWF": {}, "UGX": {}, "VND": {}, "VUV": {}, "XAF": {}, "XOF": {}, "XPF": {},
}

// threeDecimalCurrencies são enviadas em milésimos
var threeDecimalCurrencies = map[string]struct{}{
	"BHD": {}, "JOD": {}, "KWD": {}, "OMR": {}, "TND": {},
}

// NormalizedCurrency retorna o código ISO em maiúsculas
func (e PaymentEvent) NormalizedCurrency() string {
	return strings.ToUpper(strings.TrimSpace(e.Currency))
}

// Amount converte o valor de unidades menores para a unidade da moeda
func (e PaymentEvent) Amount() float64 {
	currency := e.NormalizedCurrency()
	if _, ok := zeroDecimalCurrencies[currency]; ok {
		return float64(e.AmountMinor)
	}
	if _, ok := threeDecimalCurrencies[currency]; ok {
		return float64(e.AmountMinor) / 1000
	}
	return float64(e.AmountMinor) / 100
}
