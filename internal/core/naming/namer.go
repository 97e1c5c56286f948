package naming

import "errors"

// =============================================================================
// Resource Namer
// =============================================================================

// ErrNilConvention is returned when a namer is constructed without a
// convention. A nil convention is a programming error, not a recoverable
// condition, so construction fails immediately.
var ErrNilConvention = errors.New("resource namer requires a naming convention")

// Resource-type tokens, one per resource kind.
const (
	typeCluster        = "ecs"
	typeTaskDefinition = "task"
	typeService        = "svc"
	typeALB            = "alb"
	typeNLB            = "nlb"
	typeRdsInstance    = "rds"
	typeCache          = "cache"
	typeLambda         = "lambda"
	typeIamRole        = "role"
	typeIamUser        = "user"
	typeIamPolicy      = "policy"
	typeSnsTopic       = "sns"
	typeSqsQueue       = "sqs"
	typeSecret         = "secret"
	typeParameter      = "param"
)

// ResourceNamer exposes one method per resource kind for a single identity
// triple. Every method is a pure delegation to the bound Convention with a
// fixed resource-type token: repeated calls with the same purpose return
// byte-identical strings.
type ResourceNamer struct {
	conv   *Convention
	triple Triple
}

// NewResourceNamer binds a namer to one convention and one validated triple.
func NewResourceNamer(conv *Convention, triple Triple) (*ResourceNamer, error) {
	if conv == nil {
		return nil, ErrNilConvention
	}
	if err := conv.Validate(triple); err != nil {
		return nil, err
	}
	return &ResourceNamer{conv: conv, triple: triple}, nil
}

// Triple returns the identity triple the namer is bound to.
func (n *ResourceNamer) Triple() Triple {
	return n.triple
}

// defaultPurpose maps an empty purpose to "main".
func defaultPurpose(purpose string) string {
	if purpose == "" {
		return "main"
	}
	return purpose
}

// Cluster names the ECS cluster for a purpose.
func (n *ResourceNamer) Cluster(purpose string) (string, error) {
	return n.conv.ResourceName(n.triple, typeCluster, defaultPurpose(purpose))
}

// TaskDefinition names an ECS task definition.
func (n *ResourceNamer) TaskDefinition(purpose string) (string, error) {
	return n.conv.ResourceName(n.triple, typeTaskDefinition, defaultPurpose(purpose))
}

// Service names an ECS service.
func (n *ResourceNamer) Service(purpose string) (string, error) {
	return n.conv.ResourceName(n.triple, typeService, defaultPurpose(purpose))
}

// ApplicationLoadBalancer names an ALB.
func (n *ResourceNamer) ApplicationLoadBalancer(purpose string) (string, error) {
	return n.conv.ResourceName(n.triple, typeALB, defaultPurpose(purpose))
}

// NetworkLoadBalancer names an NLB.
func (n *ResourceNamer) NetworkLoadBalancer(purpose string) (string, error) {
	return n.conv.ResourceName(n.triple, typeNLB, defaultPurpose(purpose))
}

// Vpc names the VPC. An empty purpose defaults to "main".
func (n *ResourceNamer) Vpc(purpose string) (string, error) {
	return n.conv.VpcName(n.triple, purpose)
}

// RdsInstance names an RDS database instance.
func (n *ResourceNamer) RdsInstance(purpose string) (string, error) {
	return n.conv.ResourceName(n.triple, typeRdsInstance, defaultPurpose(purpose))
}

// Cache names an ElastiCache cluster.
func (n *ResourceNamer) Cache(purpose string) (string, error) {
	return n.conv.ResourceName(n.triple, typeCache, defaultPurpose(purpose))
}

// Lambda names a Lambda function.
func (n *ResourceNamer) Lambda(purpose string) (string, error) {
	return n.conv.ResourceName(n.triple, typeLambda, defaultPurpose(purpose))
}

// IamRole names an IAM role.
func (n *ResourceNamer) IamRole(purpose string) (string, error) {
	return n.conv.ResourceName(n.triple, typeIamRole, defaultPurpose(purpose))
}

// IamUser names an IAM user.
func (n *ResourceNamer) IamUser(purpose string) (string, error) {
	return n.conv.ResourceName(n.triple, typeIamUser, defaultPurpose(purpose))
}

// IamPolicy names an IAM policy.
func (n *ResourceNamer) IamPolicy(purpose string) (string, error) {
	return n.conv.ResourceName(n.triple, typeIamPolicy, defaultPurpose(purpose))
}

// SecurityGroupFor names the security group for a network role.
func (n *ResourceNamer) SecurityGroupFor(role, purpose string) (string, error) {
	return n.conv.SecurityGroupName(n.triple, role, defaultPurpose(purpose))
}

// Bucket names an S3 bucket.
func (n *ResourceNamer) Bucket(purpose string) (string, error) {
	return n.conv.BucketName(n.triple, defaultPurpose(purpose))
}

// LogGroup names a CloudWatch log group under an AWS service namespace.
func (n *ResourceNamer) LogGroup(service, purpose string) (string, error) {
	return n.conv.LogGroupName(n.triple, service, defaultPurpose(purpose))
}

// SnsTopic names an SNS topic.
func (n *ResourceNamer) SnsTopic(purpose string) (string, error) {
	return n.conv.ResourceName(n.triple, typeSnsTopic, defaultPurpose(purpose))
}

// SqsQueue names an SQS queue.
func (n *ResourceNamer) SqsQueue(purpose string) (string, error) {
	return n.conv.ResourceName(n.triple, typeSqsQueue, defaultPurpose(purpose))
}

// Secret names a Secrets Manager secret.
func (n *ResourceNamer) Secret(purpose string) (string, error) {
	return n.conv.ResourceName(n.triple, typeSecret, defaultPurpose(purpose))
}

// Parameter names an SSM parameter.
func (n *ResourceNamer) Parameter(purpose string) (string, error) {
	return n.conv.ResourceName(n.triple, typeParameter, defaultPurpose(purpose))
}

// Export names a cross-stack export for a resource role.
func (n *ResourceNamer) Export(role string) (string, error) {
	return n.conv.ExportName(n.triple.Environment, role)
}

// Custom names a resource of an arbitrary kind. Escape hatch for resource
// types without a dedicated method.
func (n *ResourceNamer) Custom(resourceType, purpose string) (string, error) {
	return n.conv.ResourceName(n.triple, resourceType, defaultPurpose(purpose))
}
