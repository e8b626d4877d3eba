// Package school defines the typed entities behind the TK IT Harvysyah
// portals and the service that mediates access to the spreadsheet-backed
// data source.
package school

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/demoaplikasi02-prog/tkitharvysyah/core"
	"github.com/demoaplikasi02-prog/tkitharvysyah/core/sheet"
)

// Logical table names understood by the data source.
const (
	TableTeacher   = "Teacher"
	TableStudent   = "Student"
	TableHafalan   = "Hafalan"
	TablePrincipal = "Principal"
	TableSPP       = "SPP"
	TableScore     = "Score"
)

// Tables lists every logical table in source order.
var Tables = []string{TableTeacher, TableStudent, TableHafalan, TablePrincipal, TableSPP, TableScore}

// Grade is the four-point proficiency scale used for memorization
// assessments. Raw sheet values outside the scale decode to GradeUnclassified
// instead of being silently folded into a bucket.
type Grade int

const (
	GradeUnclassified Grade = iota
	GradeBB                 // Belum Berkembang
	GradeMB                 // Mulai Berkembang
	GradeBSH                // Berkembang Sesuai Harapan
	GradeBSB                // Berkembang Sangat Baik
)

// Grades lists the fixed scale in ascending order.
var Grades = []Grade{GradeBB, GradeMB, GradeBSH, GradeBSB}

func GradeFromString(s string) Grade {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BB":
		return GradeBB
	case "MB":
		return GradeMB
	case "BSH":
		return GradeBSH
	case "BSB":
		return GradeBSB
	}
	return GradeUnclassified
}

func (g Grade) Code() string {
	switch g {
	case GradeBB:
		return "BB"
	case GradeMB:
		return "MB"
	case GradeBSH:
		return "BSH"
	case GradeBSB:
		return "BSB"
	}
	return ""
}

func (g Grade) Label() string {
	switch g {
	case GradeBB:
		return "Belum Berkembang"
	case GradeMB:
		return "Mulai Berkembang"
	case GradeBSH:
		return "Berkembang Sesuai Harapan"
	case GradeBSB:
		return "Berkembang Sangat Baik"
	}
	return "Tidak Terklasifikasi"
}

func (g Grade) MarshalJSON() ([]byte, error) { return json.Marshal(g.Code()) }

func (g *Grade) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*g = GradeFromString(s)
	return nil
}

// Category is the closed set of memorization curriculum categories.
type Category int

const (
	CategoryUnclassified Category = iota
	CategorySurah
	CategoryDoa
	CategoryHadist
)

var Categories = []Category{CategorySurah, CategoryDoa, CategoryHadist}

// CategoryFromString classifies a raw category cell by substring, the way the
// sheets label them ("Hafalan Surah Pendek", "Hafalan Doa Sehari-hari",
// "Hafalan Hadist").
func CategoryFromString(s string) Category {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "surah"):
		return CategorySurah
	case strings.Contains(lower, "doa"):
		return CategoryDoa
	case strings.Contains(lower, "hadis"):
		return CategoryHadist
	}
	return CategoryUnclassified
}

func (c Category) Label() string {
	switch c {
	case CategorySurah:
		return "Hafalan Surah Pendek"
	case CategoryDoa:
		return "Hafalan Doa Sehari-hari"
	case CategoryHadist:
		return "Hafalan Hadist"
	}
	return "Lainnya"
}

func (c Category) MarshalJSON() ([]byte, error) { return json.Marshal(c.Label()) }

func (c *Category) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*c = CategoryFromString(s)
	return nil
}

// BillingKind separates recurring monthly dues from one-off charges.
type BillingKind int

const (
	BillingSPP BillingKind = iota
	BillingOther
)

// BillingKindFromString classifies the SPP sheet's Kategori cell: anything
// containing "spp", or left empty as older rows are, is a monthly due.
func BillingKindFromString(s string) BillingKind {
	lower := strings.ToLower(strings.TrimSpace(s))
	if lower == "" || strings.Contains(lower, "spp") {
		return BillingSPP
	}
	return BillingOther
}

func (k BillingKind) String() string {
	if k == BillingSPP {
		return "spp"
	}
	return "other"
}

func (k BillingKind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

func (k *BillingKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*k = BillingKindFromString(s)
	return nil
}

type Teacher struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Class     string `json:"class"`
	PhotoLink string `json:"photo_link,omitempty"`
}

type Student struct {
	Name      string `json:"name"`
	NISN      string `json:"nisn"`
	Class     string `json:"class"`
	PhotoLink string `json:"photo_link,omitempty"`
}

type Principal struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	PhotoLink string `json:"photo_link,omitempty"`
}

// Score is one recorded assessment. Timestamp is assigned by the server on
// creation and is the record's only mutation identity: a Score without one
// cannot be edited or deleted.
type Score struct {
	StudentID   string   `json:"student_id"`
	Category    Category `json:"category"`
	ItemName    string   `json:"item_name"`
	Grade       Grade    `json:"grade"`
	Date        string   `json:"date"` // YYYY-MM-DD, lexicographically sortable
	Notes       string   `json:"notes,omitempty"`
	Semester    string   `json:"semester,omitempty"`
	TeacherName string   `json:"teacher_name,omitempty"`
	Timestamp   string   `json:"timestamp,omitempty"`
}

// Time parses the record's date; unparseable dates yield the zero time and
// sink to the bottom of date-descending sorts.
func (s Score) Time() time.Time { return DateFromString(s.Date) }

// CurriculumItem is one assessable memorization unit, read-only from this
// system's perspective.
type CurriculumItem struct {
	Category Category `json:"category"`
	ItemName string   `json:"item_name"`
	Semester string   `json:"semester"` // normalized: "1", "2" or ""
}

// BillingItem is one SPP ledger row. Amount is decoded once at the boundary
// (digits only, zero when absent); Status keeps the sheet's verbatim text for
// display while Paid carries its interpretation.
type BillingItem struct {
	NISN     string      `json:"nisn"`
	Kind     BillingKind `json:"kind"`
	Period   string      `json:"period"` // month label for dues, description otherwise
	Amount   int64       `json:"amount"`
	Status   string      `json:"status"`
	Paid     bool        `json:"paid"`
	PaidDate string      `json:"paid_date,omitempty"`
}

// NewScore defines what a teacher provides to record an assessment. The
// server assigns the Timestamp on creation.
type NewScore struct {
	StudentID   string `json:"student_id" validate:"required"`
	Category    string `json:"category" validate:"required,category"`
	ItemName    string `json:"item_name" validate:"required"`
	Grade       string `json:"grade" validate:"required,grade"`
	Date        string `json:"date" validate:"required,sheetdate"`
	Notes       string `json:"notes"`
	Semester    string `json:"semester"`
	TeacherName string `json:"teacher_name"`
}

func (ns *NewScore) Validate() error {
	ns.StudentID = core.CleanString(ns.StudentID)
	ns.ItemName = core.CleanString(ns.ItemName)
	ns.Date = core.CleanString(ns.Date)
	ns.TeacherName = core.CleanString(ns.TeacherName)
	return core.Validate.Struct(ns)
}

func (ns NewScore) score() Score {
	return Score{
		StudentID:   ns.StudentID,
		Category:    CategoryFromString(ns.Category),
		ItemName:    ns.ItemName,
		Grade:       GradeFromString(ns.Grade),
		Date:        ns.Date,
		Notes:       ns.Notes,
		Semester:    NormalizeSemester(ns.Semester),
		TeacherName: ns.TeacherName,
	}
}

// UpdateScore modifies an existing assessment, addressed by its Timestamp.
type UpdateScore struct {
	Timestamp   string `json:"timestamp"`
	StudentID   string `json:"student_id" validate:"required"`
	Category    string `json:"category" validate:"required,category"`
	ItemName    string `json:"item_name" validate:"required"`
	Grade       string `json:"grade" validate:"required,grade"`
	Date        string `json:"date" validate:"required,sheetdate"`
	Notes       string `json:"notes"`
	Semester    string `json:"semester"`
	TeacherName string `json:"teacher_name"`
}

func (us *UpdateScore) Validate() error {
	us.StudentID = core.CleanString(us.StudentID)
	us.ItemName = core.CleanString(us.ItemName)
	us.Date = core.CleanString(us.Date)
	us.TeacherName = core.CleanString(us.TeacherName)
	return core.Validate.Struct(us)
}

func (us UpdateScore) score() Score {
	return Score{
		StudentID:   us.StudentID,
		Category:    CategoryFromString(us.Category),
		ItemName:    us.ItemName,
		Grade:       GradeFromString(us.Grade),
		Date:        us.Date,
		Notes:       us.Notes,
		Semester:    NormalizeSemester(us.Semester),
		TeacherName: us.TeacherName,
		Timestamp:   strings.TrimSpace(us.Timestamp),
	}
}

// Record decoding. The sheets address fields by the exact header names below;
// decoding happens here once so nothing downstream touches raw cells.

func TeacherFromRecord(rec sheet.Record) Teacher {
	return Teacher{
		Name:      strings.TrimSpace(rec["Name"]),
		Phone:     strings.TrimSpace(rec["Phone"]),
		Class:     strings.TrimSpace(rec["Class"]),
		PhotoLink: strings.TrimSpace(rec["Link Photo"]),
	}
}

func StudentFromRecord(rec sheet.Record) Student {
	return Student{
		Name:      strings.TrimSpace(rec["Name"]),
		NISN:      strings.TrimSpace(rec["NISN"]),
		Class:     strings.TrimSpace(rec["Class"]),
		PhotoLink: strings.TrimSpace(rec["Link Photo"]),
	}
}

func PrincipalFromRecord(rec sheet.Record) Principal {
	return Principal{
		Name:      strings.TrimSpace(rec["Name"]),
		Phone:     strings.TrimSpace(rec["Phone"]),
		PhotoLink: strings.TrimSpace(rec["Link Photo"]),
	}
}

func ScoreFromRecord(rec sheet.Record) Score {
	return Score{
		StudentID:   strings.TrimSpace(rec["Student ID"]),
		Category:    CategoryFromString(rec["Category"]),
		ItemName:    strings.TrimSpace(rec["Item Name"]),
		Grade:       GradeFromString(rec["Score"]),
		Date:        strings.TrimSpace(rec["Date"]),
		Notes:       strings.TrimSpace(rec["Notes"]),
		Semester:    strings.TrimSpace(rec["Semester"]),
		TeacherName: strings.TrimSpace(rec["Teacher Name"]),
		Timestamp:   strings.TrimSpace(rec["Timestamp"]),
	}
}

func BillingItemFromRecord(rec sheet.Record) BillingItem {
	status := strings.TrimSpace(rec["Status"])
	return BillingItem{
		NISN:     strings.TrimSpace(rec["NISN"]),
		Kind:     BillingKindFromString(rec["Kategori"]),
		Period:   strings.TrimSpace(rec["Bulan"]),
		Amount:   AmountFromString(rec["Nominal"]),
		Status:   status,
		Paid:     StatusPaid(status),
		PaidDate: strings.TrimSpace(rec["Tanggal Bayar"]),
	}
}
