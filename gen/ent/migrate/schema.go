// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "doc_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "method", Type: field.TypeString, Nullable: true},
		{Name: "method_params", Type: field.TypeJSON, Nullable: true},
		{Name: "lease_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
		{Name: "portfolio_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_leases_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[12]},
				RefColumns: []*schema.Column{LeasesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extract_job_lease_files_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[13]},
				RefColumns: []*schema.Column{LeaseFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "extract_job_portfolios_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[14]},
				RefColumns: []*schema.Column{PortfoliosColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_file_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[13], ExtractJobColumns[2]},
			},
			{
				Name:    "extractjob_status",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[4]},
			},
		},
	}
	// LeasesColumns holds the columns for the "leases" table.
	LeasesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "annual_rent", Type: field.TypeInt, Nullable: true},
		{Name: "term_years", Type: field.TypeInt, Nullable: true},
		{Name: "escalator", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(6,4)"}},
		{Name: "risk_tier", Type: field.TypeString, Default: "medium"},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "acres", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "developer", Type: field.TypeString, Nullable: true},
		{Name: "landowners", Type: field.TypeString, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "portfolio_id", Type: field.TypeUUID},
	}
	// LeasesTable holds the schema information for the "leases" table.
	LeasesTable = &schema.Table{
		Name:       "leases",
		Columns:    LeasesColumns,
		PrimaryKey: []*schema.Column{LeasesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "leases_portfolios_leases",
				Columns:    []*schema.Column{LeasesColumns[13]},
				RefColumns: []*schema.Column{PortfoliosColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// LeaseFilesColumns holds the columns for the "lease_files" table.
	LeaseFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "content_hash", Type: field.TypeBytes},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "lease_id", Type: field.TypeUUID, Nullable: true},
		{Name: "portfolio_id", Type: field.TypeUUID},
	}
	// LeaseFilesTable holds the schema information for the "lease_files" table.
	LeaseFilesTable = &schema.Table{
		Name:       "lease_files",
		Columns:    LeaseFilesColumns,
		PrimaryKey: []*schema.Column{LeaseFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lease_files_leases_files",
				Columns:    []*schema.Column{LeaseFilesColumns[7]},
				RefColumns: []*schema.Column{LeasesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "lease_files_portfolios_files",
				Columns:    []*schema.Column{LeaseFilesColumns[8]},
				RefColumns: []*schema.Column{PortfoliosColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "leasefile_portfolio_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{LeaseFilesColumns[8], LeaseFilesColumns[5]},
			},
		},
	}
	// PortfoliosColumns holds the columns for the "portfolios" table.
	PortfoliosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "region", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PortfoliosTable holds the schema information for the "portfolios" table.
	PortfoliosTable = &schema.Table{
		Name:       "portfolios",
		Columns:    PortfoliosColumns,
		PrimaryKey: []*schema.Column{PortfoliosColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractJobTable,
		LeasesTable,
		LeaseFilesTable,
		PortfoliosTable,
	}
)

func init() {
	ExtractJobTable.ForeignKeys[0].RefTable = LeasesTable
	ExtractJobTable.ForeignKeys[1].RefTable = LeaseFilesTable
	ExtractJobTable.ForeignKeys[2].RefTable = PortfoliosTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
	LeasesTable.ForeignKeys[0].RefTable = PortfoliosTable
	LeasesTable.Annotation = &entsql.Annotation{
		Table: "leases",
	}
	LeaseFilesTable.ForeignKeys[0].RefTable = LeasesTable
	LeaseFilesTable.ForeignKeys[1].RefTable = PortfoliosTable
	LeaseFilesTable.Annotation = &entsql.Annotation{
		Table: "lease_files",
	}
	PortfoliosTable.Annotation = &entsql.Annotation{
		Table: "portfolios",
	}
}
