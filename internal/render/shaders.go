package render

// Built-in GLSL sources for the default passes. Attribute and sampler
// names follow raylib's conventions (vertexPosition, texture0, mvp) so the
// rgl backend binds them without extra plumbing; other backends can remap.

const sceneVertexSrc = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;

uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;
uniform mat4 matLightVP;

out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
out vec4 fragPosLightSpace;

void main()
{
    fragPosition = vec3(matModel*vec4(vertexPosition, 1.0));
    fragTexCoord = vertexTexCoord;
    fragNormal = normalize(mat3(matNormal)*vertexNormal);
    fragPosLightSpace = matLightVP*vec4(fragPosition, 1.0);
    gl_Position = mvp*vec4(vertexPosition, 1.0);
}
`

const sceneFragmentSrc = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
in vec4 fragPosLightSpace;

out vec4 finalColor;

#define MAX_LIGHTS 8

uniform int dirLightCount;
uniform vec3 dirLightDir[MAX_LIGHTS];
uniform vec3 dirLightColor[MAX_LIGHTS];
uniform int pointLightCount;
uniform vec3 pointLightPos[MAX_LIGHTS];
uniform vec3 pointLightColor[MAX_LIGHTS];
uniform float pointLightRadius[MAX_LIGHTS];
uniform vec3 ambientColor;
uniform vec3 viewPos;

uniform vec4 materialColor;
uniform float materialShininess;

uniform sampler2D shadowMap;
uniform int shadowsEnabled;
uniform float shadowBias;

float shadowFactor()
{
    if (shadowsEnabled == 0) return 0.0;
    vec3 proj = fragPosLightSpace.xyz/fragPosLightSpace.w*0.5 + 0.5;
    if (proj.z > 1.0) return 0.0;
    float closest = texture(shadowMap, proj.xy).r;
    return proj.z - shadowBias > closest ? 1.0 : 0.0;
}

vec3 blinnPhong(vec3 lightDir, vec3 lightColor, vec3 normal, vec3 viewDir)
{
    float diff = max(dot(normal, -lightDir), 0.0);
    vec3 halfway = normalize(-lightDir + viewDir);
    float spec = pow(max(dot(normal, halfway), 0.0), materialShininess);
    return (diff + spec)*lightColor;
}

void main()
{
    vec3 normal = normalize(fragNormal);
    vec3 viewDir = normalize(viewPos - fragPosition);

    vec3 lit = ambientColor;
    float shadow = shadowFactor();
    for (int i = 0; i < dirLightCount; i++)
    {
        lit += (1.0 - shadow)*blinnPhong(normalize(dirLightDir[i]), dirLightColor[i], normal, viewDir);
    }
    for (int i = 0; i < pointLightCount; i++)
    {
        vec3 toFrag = fragPosition - pointLightPos[i];
        float dist = length(toFrag);
        float atten = clamp(1.0 - dist/pointLightRadius[i], 0.0, 1.0);
        lit += atten*atten*blinnPhong(toFrag/max(dist, 0.0001), pointLightColor[i], normal, viewDir);
    }

    finalColor = vec4(lit*materialColor.rgb, materialColor.a);
}
`

const pbrFragmentSrc = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
in vec4 fragPosLightSpace;

out vec4 finalColor;

#define MAX_LIGHTS 8
#define PI 3.14159265359

uniform int dirLightCount;
uniform vec3 dirLightDir[MAX_LIGHTS];
uniform vec3 dirLightColor[MAX_LIGHTS];
uniform int pointLightCount;
uniform vec3 pointLightPos[MAX_LIGHTS];
uniform vec3 pointLightColor[MAX_LIGHTS];
uniform float pointLightRadius[MAX_LIGHTS];
uniform vec3 ambientColor;
uniform vec3 viewPos;

uniform vec4 materialColor;
uniform float materialMetallic;
uniform float materialRoughness;

uniform sampler2D shadowMap;
uniform int shadowsEnabled;
uniform float shadowBias;

float shadowFactor()
{
    if (shadowsEnabled == 0) return 0.0;
    vec3 proj = fragPosLightSpace.xyz/fragPosLightSpace.w*0.5 + 0.5;
    if (proj.z > 1.0) return 0.0;
    float closest = texture(shadowMap, proj.xy).r;
    return proj.z - shadowBias > closest ? 1.0 : 0.0;
}

float distributionGGX(vec3 n, vec3 h, float rough)
{
    float a2 = rough*rough*rough*rough;
    float ndh = max(dot(n, h), 0.0);
    float denom = ndh*ndh*(a2 - 1.0) + 1.0;
    return a2/(PI*denom*denom);
}

float geometrySmith(vec3 n, vec3 v, vec3 l, float rough)
{
    float k = (rough + 1.0)*(rough + 1.0)/8.0;
    float ndv = max(dot(n, v), 0.0);
    float ndl = max(dot(n, l), 0.0);
    return (ndv/(ndv*(1.0 - k) + k))*(ndl/(ndl*(1.0 - k) + k));
}

vec3 cookTorrance(vec3 lightDir, vec3 lightColor, vec3 n, vec3 v)
{
    vec3 l = -lightDir;
    vec3 h = normalize(v + l);
    vec3 f0 = mix(vec3(0.04), materialColor.rgb, materialMetallic);
    vec3 fresnel = f0 + (1.0 - f0)*pow(1.0 - max(dot(h, v), 0.0), 5.0);
    float ndf = distributionGGX(n, h, materialRoughness);
    float geo = geometrySmith(n, v, l, materialRoughness);
    vec3 spec = ndf*geo*fresnel/(4.0*max(dot(n, v), 0.0)*max(dot(n, l), 0.0) + 0.0001);
    vec3 kd = (vec3(1.0) - fresnel)*(1.0 - materialMetallic);
    float ndl = max(dot(n, l), 0.0);
    return (kd*materialColor.rgb/PI + spec)*lightColor*ndl;
}

void main()
{
    vec3 n = normalize(fragNormal);
    vec3 v = normalize(viewPos - fragPosition);

    vec3 lit = ambientColor*materialColor.rgb;
    float shadow = shadowFactor();
    for (int i = 0; i < dirLightCount; i++)
    {
        lit += (1.0 - shadow)*cookTorrance(normalize(dirLightDir[i]), dirLightColor[i], n, v);
    }
    for (int i = 0; i < pointLightCount; i++)
    {
        vec3 toFrag = fragPosition - pointLightPos[i];
        float dist = length(toFrag);
        float atten = clamp(1.0 - dist/pointLightRadius[i], 0.0, 1.0);
        lit += atten*atten*cookTorrance(toFrag/max(dist, 0.0001), pointLightColor[i], n, v);
    }

    finalColor = vec4(lit, materialColor.a);
}
`

const depthVertexSrc = `#version 330
in vec3 vertexPosition;

uniform mat4 mvp;

void main()
{
    gl_Position = mvp*vec4(vertexPosition, 1.0);
}
`

const depthFragmentSrc = `#version 330
void main()
{
    // depth-only: the fixed-function depth write is all we need
}
`

const quadVertexSrc = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec4 vertexColor;

uniform mat4 mvp;

out vec2 fragTexCoord;
out vec4 fragColor;

void main()
{
    fragTexCoord = vertexTexCoord;
    fragColor = vertexColor;
    gl_Position = mvp*vec4(vertexPosition, 1.0);
}
`

const thresholdFragmentSrc = `#version 330
in vec2 fragTexCoord;
out vec4 finalColor;

uniform sampler2D texture0;
uniform float threshold;

void main()
{
    vec3 color = texture(texture0, fragTexCoord).rgb;
    float luma = dot(color, vec3(0.2126, 0.7152, 0.0722));
    finalColor = luma > threshold ? vec4(color, 1.0) : vec4(0.0, 0.0, 0.0, 1.0);
}
`

const blurFragmentSrc = `#version 330
in vec2 fragTexCoord;
out vec4 finalColor;

uniform sampler2D texture0;
uniform vec2 texelSize;
uniform int horizontal;

const float weight[5] = float[](0.227027, 0.1945946, 0.1216216, 0.054054, 0.016216);

void main()
{
    vec2 dir = horizontal == 1 ? vec2(texelSize.x, 0.0) : vec2(0.0, texelSize.y);
    vec3 result = texture(texture0, fragTexCoord).rgb*weight[0];
    for (int i = 1; i < 5; i++)
    {
        result += texture(texture0, fragTexCoord + dir*float(i)).rgb*weight[i];
        result += texture(texture0, fragTexCoord - dir*float(i)).rgb*weight[i];
    }
    finalColor = vec4(result, 1.0);
}
`

const bloomCompositeFragmentSrc = `#version 330
in vec2 fragTexCoord;
out vec4 finalColor;

uniform sampler2D texture0;
uniform sampler2D bloomBlur;
uniform float bloomIntensity;

void main()
{
    vec3 scene = texture(texture0, fragTexCoord).rgb;
    vec3 bloom = texture(bloomBlur, fragTexCoord).rgb;
    finalColor = vec4(scene + bloom*bloomIntensity, 1.0);
}
`

const tonemapFragmentSrc = `#version 330
in vec2 fragTexCoord;
out vec4 finalColor;

uniform sampler2D texture0;
uniform int operator;
uniform float exposure;

vec3 aces(vec3 x)
{
    return clamp((x*(2.51*x + 0.03))/(x*(2.43*x + 0.59) + 0.14), 0.0, 1.0);
}

void main()
{
    vec3 hdr = texture(texture0, fragTexCoord).rgb;
    vec3 mapped;
    if (operator == 1)
        mapped = aces(hdr*exposure);
    else if (operator == 2)
        mapped = vec3(1.0) - exp(-hdr*exposure);
    else
        mapped = hdr/(hdr + vec3(1.0));
    finalColor = vec4(mapped, 1.0);
}
`

const fxaaFragmentSrc = `#version 330
in vec2 fragTexCoord;
out vec4 finalColor;

uniform sampler2D texture0;
uniform vec2 resolution;
uniform float spanMax;

void main()
{
    vec2 texel = 1.0/resolution;
    vec3 luma = vec3(0.299, 0.587, 0.114);

    float lumaTL = dot(luma, texture(texture0, fragTexCoord + texel*vec2(-1.0, -1.0)).rgb);
    float lumaTR = dot(luma, texture(texture0, fragTexCoord + texel*vec2(1.0, -1.0)).rgb);
    float lumaBL = dot(luma, texture(texture0, fragTexCoord + texel*vec2(-1.0, 1.0)).rgb);
    float lumaBR = dot(luma, texture(texture0, fragTexCoord + texel*vec2(1.0, 1.0)).rgb);
    float lumaM = dot(luma, texture(texture0, fragTexCoord).rgb);

    vec2 dir = vec2(-((lumaTL + lumaTR) - (lumaBL + lumaBR)), (lumaTL + lumaBL) - (lumaTR + lumaBR));
    float dirReduce = max((lumaTL + lumaTR + lumaBL + lumaBR)*0.25*0.125, 1.0/128.0);
    float rcpDirMin = 1.0/(min(abs(dir.x), abs(dir.y)) + dirReduce);
    dir = clamp(dir*rcpDirMin, vec2(-spanMax), vec2(spanMax))*texel;

    vec3 resultA = 0.5*(
        texture(texture0, fragTexCoord + dir*(1.0/3.0 - 0.5)).rgb +
        texture(texture0, fragTexCoord + dir*(2.0/3.0 - 0.5)).rgb);
    vec3 resultB = resultA*0.5 + 0.25*(
        texture(texture0, fragTexCoord + dir*-0.5).rgb +
        texture(texture0, fragTexCoord + dir*0.5).rgb);

    float lumaMin = min(lumaM, min(min(lumaTL, lumaTR), min(lumaBL, lumaBR)));
    float lumaMax = max(lumaM, max(max(lumaTL, lumaTR), max(lumaBL, lumaBR)));
    float lumaB = dot(luma, resultB);

    finalColor = (lumaB < lumaMin || lumaB > lumaMax) ? vec4(resultA, 1.0) : vec4(resultB, 1.0);
}
`
