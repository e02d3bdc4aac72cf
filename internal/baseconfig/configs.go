package baseconfig

// OptimizerConfig is the record handed to the training framework's optimizer
// initializer. All values are fixed defaults.
type OptimizerConfig struct {
	Optimizer               string  `yaml:"optimizer" json:"optimizer"`
	LR                      float64 `yaml:"lr" json:"lr"`
	MinLR                   float64 `yaml:"min_lr" json:"min_lr"`
	UseDistributedOptimizer bool    `yaml:"use_distributed_optimizer" json:"use_distributed_optimizer"`
	BF16                    bool    `yaml:"bf16" json:"bf16"`
	AdamBeta1               float64 `yaml:"adam_beta1" json:"adam_beta1"`
	AdamBeta2               float64 `yaml:"adam_beta2" json:"adam_beta2"`
	OverlapGradReduce       bool    `yaml:"overlap_grad_reduce" json:"overlap_grad_reduce"`
	OverlapParamGather      bool    `yaml:"overlap_param_gather" json:"overlap_param_gather"`
}

// TrainerConfig configures the training loop. Nil pointers mean the value
// was not supplied and serialize as null, which downstream consumers treat
// as "use your own default".
type TrainerConfig struct {
	Accelerator           string  `yaml:"accelerator" json:"accelerator"`
	Precision             string  `yaml:"precision" json:"precision"`
	Logger                bool    `yaml:"logger" json:"logger"`
	EnableCheckpointing   bool    `yaml:"enable_checkpointing" json:"enable_checkpointing"`
	UseDistributedSampler bool    `yaml:"use_distributed_sampler" json:"use_distributed_sampler"`
	MaxEpochs             *int    `yaml:"max_epochs" json:"max_epochs"`
	LogEveryNSteps        int     `yaml:"log_every_n_steps" json:"log_every_n_steps"`
	LimitValBatches       int     `yaml:"limit_val_batches" json:"limit_val_batches"`
	LimitTestBatches      int     `yaml:"limit_test_batches" json:"limit_test_batches"`
	AccumulateGradBatches int     `yaml:"accumulate_grad_batches" json:"accumulate_grad_batches"`
	GradientClipVal       float64 `yaml:"gradient_clip_val" json:"gradient_clip_val"`
	NumNodes              *int    `yaml:"num_nodes" json:"num_nodes"`
	Devices               *int    `yaml:"devices" json:"devices"`
	MaxSteps              *int    `yaml:"max_steps" json:"max_steps"`
	ValCheckInterval      *int    `yaml:"val_check_interval" json:"val_check_interval"`

	// Custom holds free-form overrides from a recipe's custom block. They
	// are serialized inline so consumers see them as ordinary trainer keys.
	Custom map[string]any `yaml:",inline" json:"custom,omitempty"`
}

// DataConfig configures the data-loading component.
type DataConfig struct {
	Paths           []string  `yaml:"paths" json:"paths"`
	Weights         []float64 `yaml:"weights" json:"weights"`
	SeqLength       *int      `yaml:"seq_length" json:"seq_length"`
	GlobalBatchSize *int      `yaml:"global_batch_size" json:"global_batch_size"`
	NumWorkers      int       `yaml:"num_workers" json:"num_workers"`
	Split           string    `yaml:"split" json:"split"`
	IndexMappingDir *string   `yaml:"index_mapping_dir" json:"index_mapping_dir"`
}

// RunConfig describes the cluster job submission for one training run.
type RunConfig struct {
	Name       string  `yaml:"name" json:"name"`
	ResultsDir *string `yaml:"results_dir" json:"results_dir"`
	TimeLimit  string  `yaml:"time_limit" json:"time_limit"`
}

// ModelConfig is the architecture record a model-family profile resolves
// for its size. Fields that only some families use are omitted when zero.
type ModelConfig struct {
	NumLayers             int    `yaml:"num_layers" json:"num_layers"`
	HiddenSize            int    `yaml:"hidden_size" json:"hidden_size"`
	FFNHiddenSize         int    `yaml:"ffn_hidden_size" json:"ffn_hidden_size"`
	NumAttentionHeads     int    `yaml:"num_attention_heads" json:"num_attention_heads"`
	NumQueryGroups        int    `yaml:"num_query_groups,omitempty" json:"num_query_groups,omitempty"`
	NumMoEExperts         int    `yaml:"num_moe_experts,omitempty" json:"num_moe_experts,omitempty"`
	PositionEmbeddingType string `yaml:"position_embedding_type" json:"position_embedding_type"`
}

// TokenizerConfig describes the tokenizer a model family trains with.
type TokenizerConfig struct {
	Library string  `yaml:"library" json:"library"`
	Type    string  `yaml:"type" json:"type"`
	Model   *string `yaml:"model" json:"model"`
}
