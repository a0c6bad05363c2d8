package services

import (
	"time"

	"fincompass/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	salaryDay = 5
	rentDay   = 10
)

type spendingProfile struct {
	categoryID   string
	descriptions []string
	minAmount    float64
	maxAmount    float64
	perMonth     int
}

type sampleDataService struct {
	faker    *gofakeit.Faker
	profiles []spendingProfile
}

// NewSampleDataService creates a generator for demo wallets and transaction
// history. The seed fixes the generated stream, which keeps demo environments
// reproducible.
func NewSampleDataService(seed uint64) SampleDataServiceInterface {
	return &sampleDataService{
		faker:    gofakeit.New(seed),
		profiles: initSpendingProfiles(),
	}
}

func initSpendingProfiles() []spendingProfile {
	return []spendingProfile{
		{
			categoryID:   "mercado",
			descriptions: []string{"Mercado Pão de Açúcar", "Mercado Extra", "Supermercado Dia", "Mercado Carrefour"},
			minAmount:    80,
			maxAmount:    450,
			perMonth:     5,
		},
		{
			categoryID:   "transporte",
			descriptions: []string{"Uber", "99 Corrida", "Recarga Bilhete Único", "Posto Shell"},
			minAmount:    15,
			maxAmount:    180,
			perMonth:     6,
		},
		{
			categoryID:   "lazer",
			descriptions: []string{"iFood", "Netflix", "Cinema Cinemark", "Bar do Zé", "Lazer fim de semana"},
			minAmount:    25,
			maxAmount:    220,
			perMonth:     4,
		},
		{
			categoryID:   "saude",
			descriptions: []string{"Farmácia Drogasil", "Consulta médica", "Academia SmartFit"},
			minAmount:    40,
			maxAmount:    300,
			perMonth:     2,
		},
		{
			categoryID:   "contas",
			descriptions: []string{"Conta de luz", "Internet fibra", "Conta de água"},
			minAmount:    60,
			maxAmount:    250,
			perMonth:     3,
		},
	}
}

// GenerateHistory produces one checking wallet plus months of categorized
// history: a recurring salary, a recurring rent, and variable spending drawn
// from the category profiles.
func (s *sampleDataService) GenerateHistory(userID uuid.UUID, months int, now time.Time) ([]models.Wallet, []models.Transaction) {
	if months < 1 {
		months = 1
	}

	salary := decimal.NewFromFloat(s.faker.Float64Range(4500, 9500)).Round(2)
	rent := decimal.NewFromFloat(s.faker.Float64Range(1200, 2800)).Round(2)

	wallets := []models.Wallet{
		{
			ID:      uuid.New(),
			UserID:  userID,
			Name:    "Conta Corrente",
			Balance: decimal.NewFromFloat(s.faker.Float64Range(1500, 25000)).Round(2),
		},
	}
	walletID := wallets[0].ID

	transactions := make([]models.Transaction, 0, months*24)

	appendTxn := func(txnType string, amount decimal.Decimal, date time.Time, description, categoryID string, recurring bool) {
		txn := models.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			WalletID:    walletID,
			Type:        txnType,
			Amount:      amount,
			Date:        date,
			Description: description,
			CategoryID:  categoryID,
			IsRecurring: recurring,
		}
		if recurring {
			txn.RecurrenceInterval = models.RecurrenceMonthly
		}
		transactions = append(transactions, txn)
	}

	for offset := months; offset >= 1; offset-- {
		month := monthStart(now).AddDate(0, -offset, 0)

		appendTxn(models.TransactionTypeIncome, salary,
			month.AddDate(0, 0, salaryDay-1), "Salário", "salario", true)
		appendTxn(models.TransactionTypeExpense, rent,
			month.AddDate(0, 0, rentDay-1), "Aluguel apartamento", "moradia", true)

		for _, profile := range s.profiles {
			for n := 0; n < profile.perMonth; n++ {
				day := s.faker.IntRange(1, 28)
				amount := decimal.NewFromFloat(s.faker.Float64Range(profile.minAmount, profile.maxAmount)).Round(2)
				description := profile.descriptions[s.faker.IntRange(0, len(profile.descriptions)-1)]

				appendTxn(models.TransactionTypeExpense, amount,
					month.AddDate(0, 0, day-1), description, profile.categoryID, false)
			}
		}
	}

	return wallets, transactions
}
