package testkit

// Fixture data: 30 samples from 10 subjects at three timepoints, plus
// one metadata-only sample (S31) and one diversity-only sample (S99).

var metadataHeader = []string{"sample_id", "subject", "timepoint", "classification", "cd_behavior", "year_diagnosed", "env_biome", "site", "rare_group", "smoker"}

var metadataRows = [][]string{
	{"S01", "subject_01", "t1", "B1", "inflammatory", "2000", "urban biome", "north", "x", "yes"},
	{"S02", "subject_01", "t2", "B1", "inflammatory", "2000", "urban biome", "north", "x", "yes"},
	{"S03", "subject_01", "t3", "B1", "inflammatory", "2000", "urban biome", "north", "y", "yes"},
	{"S04", "subject_02", "t1", "B1", "penetrating", "1994", "urban biome", "south", "y", "no"},
	{"S05", "subject_02", "t2", "B1", "penetrating", "1994", "urban biome", "south", "y", "NA"},
	{"S06", "subject_02", "t3", "B1", "penetrating", "1994", "urban biome", "south", "y", "no"},
	{"S07", "subject_03", "t1", "B1", "stricturing", "2002", "urban biome", "east", "y", "yes"},
	{"S08", "subject_03", "t2", "B1", "stricturing", "2002", "urban biome", "east", "y", "yes"},
	{"S09", "subject_03", "t3", "B1", "stricturing", "2002", "urban biome", "east", "y", "yes"},
	{"S10", "subject_04", "t1", "B1", "inflammatory", "2010", "urban biome", "west", "y", "no"},
	{"S11", "subject_04", "t2", "B1", "inflammatory", "2010", "urban biome", "west", "y", "no"},
	{"S12", "subject_04", "t3", "B1", "inflammatory", "2010", "urban biome", "west", "y", "no"},
	{"S13", "subject_05", "t1", "B1", "penetrating", "1991", "urban biome", "central", "y", "yes"},
	{"S14", "subject_05", "t2", "B1", "penetrating", "1991", "urban biome", "central", "y", "yes"},
	{"S15", "subject_05", "t3", "B1", "penetrating", "1991", "urban biome", "central", "y", "yes"},
	{"S16", "subject_06", "t1", "B2", "stricturing", "1992", "urban biome", "coastal", "z", "no"},
	{"S17", "subject_06", "t2", "B2", "stricturing", "1992", "urban biome", "coastal", "z", "NA"},
	{"S18", "subject_06", "t3", "B2", "stricturing", "1992", "urban biome", "coastal", "z", "no"},
	{"S19", "subject_07", "t1", "B2", "inflammatory", "2007", "urban biome", "north", "z", "yes"},
	{"S20", "subject_07", "t2", "B2", "inflammatory", "2007", "urban biome", "north", "z", "yes"},
	{"S21", "subject_07", "t3", "B2", "inflammatory", "2007", "urban biome", "north", "z", "yes"},
	{"S22", "subject_08", "t1", "B2", "penetrating", "1993", "urban biome", "south", "z", "no"},
	{"S23", "subject_08", "t2", "B2", "penetrating", "1993", "urban biome", "south", "z", "no"},
	{"S24", "subject_08", "t3", "B2", "penetrating", "1993", "urban biome", "south", "z", "no"},
	{"S25", "subject_09", "t1", "B2", "stricturing", "2001", "urban biome", "east", "z", "yes"},
	{"S26", "subject_09", "t2", "B2", "stricturing", "2001", "urban biome", "east", "z", "yes"},
	{"S27", "subject_09", "t3", "B2", "stricturing", "2001", "urban biome", "east", "z", "yes"},
	{"S28", "subject_10", "t1", "B2", "inflammatory", "2008", "urban biome", "west", "z", "no"},
	{"S29", "subject_10", "t2", "B2", "inflammatory", "2008", "urban biome", "west", "z", "no"},
	{"S30", "subject_10", "t3", "B2", "inflammatory", "2008", "urban biome", "west", "z", "no"},
	{"S31", "subject_11", "t1", "B1", "inflammatory", "2001", "urban biome", "north", "z", "NA"},
}

var faithPD = map[string]float64{
	"S01": 12.9812092157,
	"S02": 13.5391903634,
	"S03": 14.7226085813,
	"S04": 13.1344246004,
	"S05": 14.3533328144,
	"S06": 14.5722466365,
	"S07": 14.6610348134,
	"S08": 14.3304670948,
	"S09": 15.591217414,
	"S10": 13.6140068547,
	"S11": 13.3697733952,
	"S12": 15.7727075271,
	"S13": 13.9190110462,
	"S14": 15.0313277519,
	"S15": 14.07745723,
	"S16": 12.0744521142,
	"S17": 12.9908274879,
	"S18": 13.680927766,
	"S19": 10.9500608044,
	"S20": 11.2431396112,
	"S21": 11.1865138921,
	"S22": 12.7044441503,
	"S23": 13.6535017532,
	"S24": 15.5467110531,
	"S25": 12.4049775111,
	"S26": 13.8471416516,
	"S27": 14.4925498335,
	"S28": 11.8504599766,
	"S29": 13.6810339707,
	"S30": 15.1872493643,
	"S99": 12.5,
}

var distanceIDs = []string{
	"S01", "S02", "S03", "S04", "S05", "S06", "S07", "S08", "S09", "S10",
	"S11", "S12", "S13", "S14", "S15", "S16", "S17", "S18", "S19", "S20",
	"S21", "S22", "S23", "S24", "S25", "S26", "S27", "S28", "S29", "S30",
	"S99",
}

var distanceRows = [][]float64{
	{0.0, 0.870665, 0.894936, 2.086026, 1.47321, 1.094397, 1.053943, 0.712566, 2.398776, 0.6327, 1.191973, 1.385203, 2.268559, 1.901617, 2.165887, 2.110967, 2.018956, 2.916777, 1.759475, 2.425993, 2.404015, 2.745921, 0.200099, 2.076009, 2.788661, 2.446265, 1.604241, 1.816298, 1.973772, 2.855813, 0.803003},
	{0.870665, 0.0, 0.618781, 1.226467, 1.281815, 0.927758, 1.022813, 1.392784, 1.748662, 1.10099, 0.776984, 0.673401, 1.489943, 1.69033, 1.564206, 1.860878, 1.495472, 2.118711, 0.901641, 1.934041, 1.769674, 1.895386, 0.995774, 1.496739, 2.466279, 1.658739, 0.870976, 1.208287, 1.364137, 2.044143, 0.674351},
	{0.894936, 0.618781, 0.0, 1.503628, 1.59152, 1.482871, 0.944428, 1.43628, 2.333057, 1.091118, 0.343788, 1.043483, 1.841689, 1.913081, 2.15756, 2.253014, 1.920859, 2.549921, 1.245522, 2.471107, 2.356426, 2.233054, 0.976278, 1.789587, 3.017473, 1.699903, 1.298402, 1.607031, 1.576108, 2.094021, 1.063567},
	{2.086026, 1.226467, 1.503628, 0.0, 1.723749, 1.765462, 1.739748, 2.494266, 1.482889, 2.275247, 1.345435, 0.860048, 0.634853, 1.902811, 1.504483, 2.357624, 1.710348, 1.148761, 0.338076, 1.749906, 1.459979, 0.97131, 2.219276, 1.609156, 2.457128, 0.696916, 0.758224, 1.042318, 1.022009, 1.151314, 1.604143},
	{1.47321, 1.281815, 1.59152, 1.723749, 0.0, 1.312641, 0.894922, 1.313666, 2.044052, 2.037154, 1.582275, 0.93359, 1.452902, 0.501982, 1.967017, 2.80751, 2.475026, 2.099926, 1.472783, 1.335011, 1.775691, 2.543265, 1.670732, 2.618587, 1.729093, 2.048069, 0.985751, 0.791288, 1.007916, 2.833929, 0.748982},
	{1.094397, 0.927758, 1.482871, 1.765462, 1.312641, 0.0, 1.547696, 1.379864, 1.431257, 1.282689, 1.68683, 1.194944, 1.81936, 1.807363, 1.188367, 1.555423, 1.416199, 2.226661, 1.449462, 1.599618, 1.445125, 2.200345, 1.190252, 1.699092, 1.908776, 2.36126, 1.228531, 1.403937, 1.810114, 2.69327, 0.754997},
	{1.053943, 1.022813, 0.944428, 1.739748, 0.894922, 1.547696, 0.0, 1.055123, 2.489264, 1.620546, 0.916586, 0.967289, 1.747012, 1.101797, 2.35971, 2.833798, 2.508612, 2.53176, 1.477871, 2.123408, 2.342221, 2.645544, 1.234336, 2.508179, 2.593521, 1.889806, 1.206258, 1.265768, 1.196773, 2.634583, 0.802958},
	{0.712566, 1.392784, 1.43628, 2.494266, 1.313666, 1.379864, 1.055123, 0.0, 2.736376, 1.270392, 1.643731, 1.668366, 2.512649, 1.670628, 2.529225, 2.666808, 2.602995, 3.182092, 2.169852, 2.439083, 2.640516, 3.242213, 0.811752, 2.722902, 2.677654, 2.819532, 1.86584, 1.930135, 2.088504, 3.397593, 0.950306},
	{2.398776, 1.748662, 2.333057, 1.482889, 2.044052, 1.431257, 2.489264, 2.736376, 0.0, 2.480925, 2.380356, 1.611504, 1.454172, 2.36479, 0.297736, 1.716063, 1.258589, 1.255152, 1.404631, 1.27339, 0.448101, 1.319283, 2.501736, 1.576821, 1.69995, 2.159108, 1.408388, 1.538633, 1.957276, 2.236824, 1.860408},
	{0.6327, 1.10099, 1.091118, 2.275247, 2.037154, 1.282689, 1.620546, 1.270392, 2.480925, 0.0, 1.434796, 1.753505, 2.584445, 2.486987, 2.214757, 1.743334, 1.778987, 3.152761, 1.968698, 2.797428, 2.596838, 2.757527, 0.474104, 1.797374, 3.162145, 2.667954, 1.950299, 2.241016, 2.416837, 2.850845, 1.304585},
	{1.191973, 0.776984, 0.343788, 1.345435, 1.582275, 1.68683, 0.916586, 1.643731, 2.380356, 1.434796, 0.0, 0.96961, 1.679262, 1.829116, 2.242213, 2.485786, 2.077351, 2.422122, 1.135712, 2.453204, 2.371874, 2.148201, 1.295288, 1.912811, 3.044914, 1.425505, 1.220797, 1.511342, 1.37932, 1.916607, 1.197422},
	{1.385203, 0.673401, 1.043483, 0.860048, 0.93359, 1.194944, 0.967289, 1.668366, 1.611504, 1.753505, 0.96961, 0.0, 0.892101, 1.223975, 1.531675, 2.303327, 1.818944, 1.621682, 0.570238, 1.488574, 1.487975, 1.720738, 1.556001, 1.841887, 2.112379, 1.268628, 0.273234, 0.579943, 0.709731, 1.922983, 0.785982},
	{2.268559, 1.489943, 1.841689, 0.634853, 1.452902, 1.81936, 1.747012, 2.512649, 1.454172, 2.584445, 1.679262, 0.892101, 0.0, 1.52516, 1.544795, 2.693454, 2.086319, 0.820213, 0.716069, 1.276635, 1.243412, 1.329914, 2.43449, 2.105214, 1.996842, 0.989499, 0.671711, 0.668038, 0.699683, 1.685148, 1.6044},
	{1.901617, 1.69033, 1.913081, 1.902811, 0.501982, 1.807363, 1.101797, 1.670628, 2.36479, 2.486987, 1.829116, 1.223975, 1.52516, 0.0, 2.336633, 3.280838, 2.904099, 2.171621, 1.71798, 1.465241, 2.041054, 2.7652, 2.100545, 3.020064, 1.843109, 2.093655, 1.246616, 0.942023, 0.972953, 2.994254, 1.227503},
	{2.165887, 1.564206, 2.15756, 1.504483, 1.967017, 1.188367, 2.35971, 2.529225, 0.297736, 2.214757, 2.242213, 1.531675, 1.544795, 2.336633, 0.0, 1.457513, 1.040061, 1.483189, 1.368997, 1.37084, 0.629767, 1.415468, 2.256337, 1.401813, 1.773761, 2.199134, 1.367382, 1.542971, 1.973918, 2.267975, 1.68808},
	{2.110967, 1.860878, 2.253014, 2.357624, 2.80751, 1.555423, 2.833798, 2.666808, 1.716063, 1.743334, 2.485786, 2.303327, 2.693454, 3.280838, 1.457513, 0.0, 0.695432, 2.806786, 2.16494, 2.716204, 2.082832, 2.179958, 2.067488, 1.021833, 3.015281, 2.968637, 2.303103, 2.619425, 2.965656, 2.71424, 2.179802},
	{2.018956, 1.495472, 1.920859, 1.710348, 2.475026, 1.416199, 2.508612, 2.602995, 1.258589, 1.778987, 2.077351, 1.818944, 2.086319, 2.904099, 1.040061, 0.695432, 0.0, 2.18759, 1.563673, 2.323292, 1.635051, 1.492465, 2.028137, 0.49214, 2.756063, 2.320939, 1.786579, 2.128386, 2.432433, 2.054645, 1.918914},
	{2.916777, 2.118711, 2.549921, 1.148761, 2.099926, 2.226661, 2.53176, 3.182092, 1.255152, 3.152761, 2.422122, 1.621682, 0.820213, 2.171621, 1.483189, 2.806786, 2.18759, 0.0, 1.317044, 1.326018, 1.064085, 1.166969, 3.067942, 2.266478, 1.95991, 1.51941, 1.363555, 1.335629, 1.48846, 1.855755, 2.241813},
	{1.759475, 0.901641, 1.245522, 0.338076, 1.472783, 1.449462, 1.477871, 2.169852, 1.404631, 1.968698, 1.135712, 0.570238, 0.716069, 1.71798, 1.368997, 2.16494, 1.563673, 1.317044, 0.0, 1.637001, 1.379751, 1.170964, 1.895968, 1.508066, 2.31912, 0.93214, 0.508895, 0.877321, 0.947012, 1.397035, 1.276434},
	{2.425993, 1.934041, 2.471107, 1.749906, 1.335011, 1.599618, 2.123408, 2.439083, 1.27339, 2.797428, 2.453204, 1.488574, 1.276635, 1.465241, 1.37084, 2.716204, 2.323292, 1.326018, 1.637001, 0.0, 0.837574, 2.136562, 2.593655, 2.593955, 0.721108, 2.256477, 1.268341, 1.019803, 1.468463, 2.832631, 1.649227},
	{2.404015, 1.769674, 2.356426, 1.459979, 1.775691, 1.445125, 2.342221, 2.640516, 0.448101, 2.596838, 2.371874, 1.487975, 1.243412, 2.041054, 0.629767, 2.082832, 1.635051, 1.064085, 1.379751, 0.837574, 0.0, 1.506221, 2.534883, 1.927437, 1.316808, 2.099558, 1.251154, 1.264703, 1.710205, 2.369597, 1.752304},
	{2.745921, 1.895386, 2.233054, 0.97131, 2.543265, 2.200345, 2.645544, 3.242213, 1.319283, 2.757527, 2.148201, 1.720738, 1.329914, 2.7652, 1.415468, 2.179958, 1.492465, 1.166969, 1.170964, 2.136562, 1.506221, 0.0, 2.839129, 1.375212, 2.773005, 1.382965, 1.571292, 1.831556, 1.935488, 1.017131, 2.335126},
	{0.200099, 0.995774, 0.976278, 2.219276, 1.670732, 1.190252, 1.234336, 0.811752, 2.501736, 0.474104, 1.295288, 1.556001, 2.43449, 2.100545, 2.256337, 2.067488, 2.028137, 3.067942, 1.895968, 2.593655, 2.534883, 2.839129, 0.0, 2.076431, 2.94359, 2.580421, 1.773152, 2.001668, 2.159877, 2.934913, 0.991004},
	{2.076009, 1.496739, 1.789587, 1.609156, 2.618587, 1.699092, 2.508179, 2.722902, 1.576821, 1.797374, 1.912811, 1.841887, 2.105214, 3.020064, 1.401813, 1.021833, 0.49214, 2.266478, 1.508066, 2.593955, 1.927437, 1.375212, 2.076431, 0.0, 3.103573, 2.120612, 1.84349, 2.227883, 2.436509, 1.714914, 2.050249},
	{2.788661, 2.466279, 3.017473, 2.457128, 1.729093, 1.908776, 2.593521, 2.677654, 1.69995, 3.162145, 3.044914, 2.112379, 1.996842, 1.843109, 1.773761, 3.015281, 2.756063, 1.95991, 2.31912, 0.721108, 1.316808, 2.773005, 2.94359, 3.103573, 0.0, 2.975037, 1.926292, 1.671972, 2.118866, 3.531383, 2.061875},
	{2.446265, 1.658739, 1.699903, 0.696916, 2.048069, 2.36126, 1.889806, 2.819532, 2.159108, 2.667954, 1.425505, 1.268628, 0.989499, 2.093655, 2.199134, 2.968637, 2.320939, 1.51941, 0.93214, 2.256477, 2.099558, 1.382965, 2.580421, 2.120612, 2.975037, 0.0, 1.246592, 1.429725, 1.133372, 1.033126, 2.033721},
	{1.604241, 0.870976, 1.298402, 0.758224, 0.985751, 1.228531, 1.206258, 1.86584, 1.408388, 1.950299, 1.220797, 0.273234, 0.671711, 1.246616, 1.367382, 2.303103, 1.786579, 1.363555, 0.508895, 1.268341, 1.251154, 1.571292, 1.773152, 1.84349, 1.926292, 1.246592, 0.0, 0.41233, 0.66762, 1.889149, 0.94329},
	{1.816298, 1.208287, 1.607031, 1.042318, 0.791288, 1.403937, 1.265768, 1.930135, 1.538633, 2.241016, 1.511342, 0.579943, 0.668038, 0.942023, 1.542971, 2.619425, 2.128386, 1.335629, 0.877321, 1.019803, 1.264703, 1.831556, 2.001668, 2.227883, 1.671972, 1.429725, 0.41233, 0.0, 0.517761, 2.187366, 1.062414},
	{1.973772, 1.364137, 1.576108, 1.022009, 1.007916, 1.810114, 1.196773, 2.088504, 1.957276, 2.416837, 1.37932, 0.709731, 0.699683, 0.972953, 1.973918, 2.965656, 2.432433, 1.48846, 0.947012, 1.468463, 1.710205, 1.935488, 2.159877, 2.436509, 2.118866, 1.133372, 0.66762, 0.517761, 0.0, 2.057199, 1.320578},
	{2.855813, 2.044143, 2.094021, 1.151314, 2.833929, 2.69327, 2.634583, 3.397593, 2.236824, 2.850845, 1.916607, 1.922983, 1.685148, 2.994254, 2.267975, 2.71424, 2.054645, 1.855755, 1.397035, 2.832631, 2.369597, 1.017131, 2.934913, 1.714914, 3.531383, 1.033126, 1.889149, 2.187366, 2.057199, 0.0, 2.604002},
	{0.803003, 0.674351, 1.063567, 1.604143, 0.748982, 0.754997, 0.802958, 0.950306, 1.860408, 1.304585, 1.197422, 0.785982, 1.6044, 1.227503, 1.68808, 2.179802, 1.918914, 2.241813, 1.276434, 1.649227, 1.752304, 2.335126, 0.991004, 2.050249, 2.061875, 2.033721, 0.94329, 1.062414, 1.320578, 2.604002, 0.0},
}
