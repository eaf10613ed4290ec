// Package reports berisi agregasi read-only atas ledger order.
// Semua fungsi murni: dihitung ulang dari snapshot setiap dipanggil,
// tidak ada yang memutasi state.
package reports

import (
	"sort"

	"github.com/yeremiapane/frozen-po-app/models"
)

const (
	FilterAll    = "ALL"
	FilterPaid   = "PAID"
	FilterUnpaid = "UNPAID"

	// UnknownMethodLabel menampung order lunas yang metodenya belum dipilih.
	UnknownMethodLabel = "Unknown"

	lowStockThreshold = 5
)

// Filter menyaring order berdasarkan sesi dan status bayar.
// sessionID kosong atau "ALL" berarti semua sesi.
func Filter(orders []models.Order, sessionID, paymentStatus string) []models.Order {
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if sessionID != "" && sessionID != FilterAll && o.SessionID != sessionID {
			continue
		}
		if paymentStatus == FilterPaid && !o.IsPaid {
			continue
		}
		if paymentStatus == FilterUnpaid && o.IsPaid {
			continue
		}
		out = append(out, o)
	}
	return out
}

type RevenueSummary struct {
	Received    int `json:"received"`
	Pending     int `json:"pending"`
	Potential   int `json:"potential"`
	PaidCount   int `json:"paid_count"`
	UnpaidCount int `json:"unpaid_count"`
}

// Revenue membagi omzet berdasarkan status bayar.
func Revenue(orders []models.Order) RevenueSummary {
	var sum RevenueSummary
	for _, o := range orders {
		if o.IsPaid {
			sum.Received += o.TotalPrice
			sum.PaidCount++
		} else {
			sum.Pending += o.TotalPrice
			sum.UnpaidCount++
		}
	}
	sum.Potential = sum.Received + sum.Pending
	return sum
}

type ItemSales struct {
	MenuID   string `json:"menu_id"`
	MenuName string `json:"menu_name"`
	Quantity int    `json:"quantity"`
	Subtotal int    `json:"subtotal"`
}

// ItemRanking menjumlahkan item terjual per menu dan mengurutkan menurun
// berdasarkan jumlah. Sort stabil: jumlah sama mempertahankan urutan
// kemunculan pertama dalam pass agregasi.
func ItemRanking(orders []models.Order) []ItemSales {
	index := make(map[string]int)
	var ranking []ItemSales

	for _, o := range orders {
		for _, it := range o.Items {
			i, seen := index[it.MenuID]
			if !seen {
				index[it.MenuID] = len(ranking)
				ranking = append(ranking, ItemSales{MenuID: it.MenuID, MenuName: it.MenuName})
				i = len(ranking) - 1
			}
			ranking[i].Quantity += it.Quantity
			ranking[i].Subtotal += it.PriceAtOrder * it.Quantity
		}
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Quantity > ranking[j].Quantity
	})
	return ranking
}

// TotalItemsSold menjumlahkan kuantitas dari hasil ranking.
func TotalItemsSold(ranking []ItemSales) int {
	total := 0
	for _, r := range ranking {
		total += r.Quantity
	}
	return total
}

type MethodTotal struct {
	Method string `json:"method"`
	Total  int    `json:"total"`
	Count  int    `json:"count"`
}

type BalanceSummary struct {
	TotalRevenue      int           `json:"total_revenue"`
	TotalTransactions int           `json:"total_transactions"`
	CashTotal         int           `json:"cash_total"`
	CashCount         int           `json:"cash_count"`
	TransferTotal     int           `json:"transfer_total"`
	TransferCount     int           `json:"transfer_count"`
	Breakdown         []MethodTotal `json:"breakdown"`
}

// Balance merekap order lunas: tunai vs transfer, plus rincian per metode.
// Order lunas tanpa metode masuk rincian di bawah label Unknown dan tidak
// dihitung sebagai transfer.
func Balance(orders []models.Order) BalanceSummary {
	var sum BalanceSummary
	index := make(map[string]int)

	addBreakdown := func(method string, total int) {
		i, seen := index[method]
		if !seen {
			index[method] = len(sum.Breakdown)
			sum.Breakdown = append(sum.Breakdown, MethodTotal{Method: method})
			i = len(sum.Breakdown) - 1
		}
		sum.Breakdown[i].Total += total
		sum.Breakdown[i].Count++
	}

	for _, o := range orders {
		if !o.IsPaid {
			continue
		}
		sum.TotalRevenue += o.TotalPrice
		sum.TotalTransactions++

		switch {
		case o.PaymentMethod == models.PaymentMethodCash:
			sum.CashTotal += o.TotalPrice
			sum.CashCount++
		case o.PaymentMethod == "":
			addBreakdown(UnknownMethodLabel, o.TotalPrice)
		default:
			sum.TransferTotal += o.TotalPrice
			sum.TransferCount++
			addBreakdown(o.PaymentMethod, o.TotalPrice)
		}
	}
	return sum
}

type StockWarningSummary struct {
	LowStock   []models.MenuItem `json:"low_stock"`
	OutOfStock []models.MenuItem `json:"out_of_stock"`
}

// StockWarnings memeriksa menu aktif yang stoknya menipis atau habis.
func StockWarnings(menu []models.MenuItem) StockWarningSummary {
	var sum StockWarningSummary
	for _, m := range menu {
		if !m.IsActive {
			continue
		}
		switch {
		case m.Stock == 0:
			sum.OutOfStock = append(sum.OutOfStock, m)
		case m.Stock < lowStockThreshold:
			sum.LowStock = append(sum.LowStock, m)
		}
	}
	return sum
}
