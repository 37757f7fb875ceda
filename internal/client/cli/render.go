package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/bookstore/internal/client/models"
	"github.com/dmitrijs2005/bookstore/internal/common"
)

func money(v float64) string { return fmt.Sprintf("₹%.2f", v) }

func renderBooks(w io.Writer, q models.SearchQuery, r models.SearchResult) {
	header := fmt.Sprintf("Books, page %d of %d", q.Page, r.TotalPages)
	if f := filterSummary(q); f != "" {
		header += " (" + f + ")"
	}
	fmt.Fprintln(w, header)

	if len(r.Books) == 0 {
		fmt.Fprintln(w, "No books found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tCATEGORY\tPRICE\tRATING")
	for _, b := range r.Books {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.1f\n", b.ID, b.Title, b.Author, b.Category, money(b.Price), b.Rating)
	}
	_ = tw.Flush()
}

func filterSummary(q models.SearchQuery) string {
	var parts []string
	if q.Search != "" {
		parts = append(parts, fmt.Sprintf("search %q", q.Search))
	}
	if q.Category != "" {
		parts = append(parts, "category "+q.Category)
	}
	if q.Author != "" {
		parts = append(parts, "author "+q.Author)
	}
	return strings.Join(parts, ", ")
}

func renderBook(w io.Writer, b models.Book) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Title:\t%s\n", b.Title)
	fmt.Fprintf(tw, "Author:\t%s\n", b.Author)
	fmt.Fprintf(tw, "Category:\t%s\n", b.Category)
	fmt.Fprintf(tw, "Price:\t%s\n", money(b.Price))
	fmt.Fprintf(tw, "Rating:\t%.1f\n", b.Rating)
	fmt.Fprintf(tw, "Image:\t%s\n", b.Image)
	_ = tw.Flush()
	fmt.Fprintln(w)
	fmt.Fprintln(w, b.Description)
	fmt.Fprintf(w, "\nType 'add %s' to put it in the cart.\n", b.ID)
}

func renderCart(w io.Writer, lines []models.CartLine, s models.CartSummary) {
	if len(lines) == 0 {
		fmt.Fprintln(w, "Your cart is empty")
		return
	}

	noun := "items"
	if s.Items == 1 {
		noun = "item"
	}
	fmt.Fprintf(w, "Your Shopping Cart: %d %s, total %s\n", s.Items, noun, money(s.Subtotal))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tQTY\tTOTAL")
	for _, l := range lines {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", l.BookID(), l.Title, money(l.Price), l.Quantity, money(l.Total()))
	}
	_ = tw.Flush()
}

func sortedFields(ve *common.ValidationError) []string {
	fields := make([]string, 0, len(ve.Fields))
	for f := range ve.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}
