package testkit

import (
	"fmt"

	"evident/domain/core"
	"evident/domain/diversity"
	"evident/domain/metadata"
)

// Column names of the fixture metadata
const (
	ColumnSubject        = "subject"
	ColumnTimepoint      = "timepoint"
	ColumnClassification = "classification" // two levels, B1 / B2
	ColumnCDBehavior     = "cd_behavior"    // three levels
	ColumnYearDiagnosed  = "year_diagnosed" // integer
	ColumnEnvBiome       = "env_biome"      // a single value
	ColumnSite           = "site"           // six levels
	ColumnRareGroup      = "rare_group"     // level "x" has two samples
	ColumnSmoker         = "smoker"         // two levels with missing values
)

// Reference effect sizes of the fixture over the 30 shared samples
const (
	AlphaClassificationD = 1.0311026931710214
	AlphaCDBehaviorF     = 0.32622432593006606
	BetaClassificationD  = -0.5035458042616245
	BetaCDBehaviorF      = 0.3659312948978449
	TimepointPartialEta  = 0.6438609708076253
	TimepointF           = 1.3445788165314823
)

// AlphaCDBehaviorPairwise holds Cohen's d per sorted level pair of cd_behavior
var AlphaCDBehaviorPairwise = map[[2]string]float64{
	{"inflammatory", "penetrating"}: -0.6932035012640885,
	{"inflammatory", "stricturing"}: -0.42907062640758836,
	{"penetrating", "stricturing"}:  0.31780055739063945,
}

// Metadata returns the fixture metadata table (31 samples, S01..S31)
func Metadata() *metadata.Table {
	ids := make([]core.SampleID, len(metadataRows))
	for i, row := range metadataRows {
		ids[i] = row[0]
	}
	table, err := metadata.NewTable(ids)
	if err != nil {
		panic(fmt.Sprintf("testkit: metadata: %v", err))
	}
	for j, name := range metadataHeader[1:] {
		values := make([]string, len(metadataRows))
		for i, row := range metadataRows {
			values[i] = row[j+1]
		}
		if err := table.AddInferredColumn(name, values); err != nil {
			panic(fmt.Sprintf("testkit: column %s: %v", name, err))
		}
	}
	return table
}

// AlphaDiversity returns Faith's PD for S01..S30 and S99
func AlphaDiversity() *diversity.Vector {
	ids := AlphaSamples()
	values := make([]float64, len(ids))
	for i, id := range ids {
		values[i] = faithPD[id]
	}
	v, err := diversity.NewVector(ids, values)
	if err != nil {
		panic(fmt.Sprintf("testkit: alpha diversity: %v", err))
	}
	return v
}

// AlphaSamples lists the alpha diversity sample IDs in file order
func AlphaSamples() []core.SampleID {
	ids := make([]core.SampleID, 0, 31)
	for i := 1; i <= 30; i++ {
		ids = append(ids, fmt.Sprintf("S%02d", i))
	}
	return append(ids, "S99")
}

// BetaDiversity returns the fixture distance matrix over S01..S30 and S99
func BetaDiversity() *diversity.DistanceMatrix {
	m, err := diversity.NewDistanceMatrix(distanceIDs, distanceRows)
	if err != nil {
		panic(fmt.Sprintf("testkit: beta diversity: %v", err))
	}
	return m
}

// SharedSamples are the samples present in both metadata and diversity data
func SharedSamples() []core.SampleID {
	ids := AlphaSamples()
	return ids[:len(ids)-1]
}
